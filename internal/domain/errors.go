package domain

import "errors"

var (
	// ErrInvalidPolicy возвращается конструктором WorkingHoursPolicy
	// при некорректных значениях; значения никогда не подрезаются молча
	ErrInvalidPolicy = errors.New("domain: invalid working hours policy")
)
