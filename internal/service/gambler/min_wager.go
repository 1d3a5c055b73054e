package gambler

import "github.com/shopspring/decimal"

// DefaultMinimumWager минимум для токена, которого нет в таблице
var DefaultMinimumWager = decimal.RequireFromString("0.01")

// Минимальные ставки по символу токена
var defaultMinWagers = map[string]string{
	"ETH":      "0.01",
	"XRP":      "10",
	"SOL":      "0.1",
	"ALGO":     "1",
	"TRX":      "100",
	"SHIB":     "100000",
	"DOGE":     "10",
	"Xahau":    "1",
	"Bitcoin":  "0.05",
	"Cardano":  "1",
	"Algorand": "1",
	"HBAR":     "1",
	"USD":      "1",
}

// MinWagerTable таблица минимальных ставок по токенам
type MinWagerTable map[string]decimal.Decimal

// DefaultMinWagers возвращает свежую копию стандартной таблицы
func DefaultMinWagers() MinWagerTable {
	t := make(MinWagerTable, len(defaultMinWagers))
	for token, v := range defaultMinWagers {
		t[token] = decimal.RequireFromString(v)
	}
	return t
}

// MinimumWager минимум для токена, 0.01 если токен неизвестен
func (t MinWagerTable) MinimumWager(token string) decimal.Decimal {
	if v, ok := t[token]; ok {
		return v
	}
	return DefaultMinimumWager
}

// Override возвращает копию таблицы с заменёнными значениями
func (t MinWagerTable) Override(overrides map[string]decimal.Decimal) MinWagerTable {
	res := make(MinWagerTable, len(t)+len(overrides))
	for k, v := range t {
		res[k] = v
	}
	for k, v := range overrides {
		res[k] = v
	}
	return res
}
