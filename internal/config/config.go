package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server         Server         `toml:"server"`
	Database       Database       `toml:"database"`
	AppointmentAPI AppointmentAPI `toml:"appointment_api"`
	Logs           Logs           `toml:"logs"`
	Metrics        Metrics        `toml:"metrics"`
	Booking        Booking        `toml:"booking"`
}

// Server настройки HTTP сервера
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// Database настройки подключения к PostgreSQL
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d *Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// AppointmentAPI настройки клиента внешнего сервиса записей
type AppointmentAPI struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// Logs настройки логирования
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics настройки Prometheus метрик
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Booking политика рабочих часов по умолчанию для диетологов
// без сохранённой строки политики
type Booking struct {
	DefaultStartHour   int      `toml:"default_start_hour"`
	DefaultEndHour     int      `toml:"default_end_hour"`
	DefaultSlotMinutes int      `toml:"default_slot_minutes"`
	DefaultWeekdays    []string `toml:"default_weekdays"` // ["monday", ...]
}

// Встроенные значения секции [booking], применяются при её отсутствии
var builtinBooking = Booking{
	DefaultStartHour:   9,
	DefaultEndHour:     17,
	DefaultSlotMinutes: 60,
	DefaultWeekdays:    []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if !meta.IsDefined("booking") {
		cfg.Booking = builtinBooking
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("config: server.http_port must be positive")
	}
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.AppointmentAPI.URL == "" {
		return fmt.Errorf("config: appointment_api.url is required")
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		return fmt.Errorf("config: metrics.path is required when metrics are enabled")
	}
	if c.Booking.DefaultSlotMinutes <= 0 {
		return fmt.Errorf("config: booking.default_slot_minutes must be positive")
	}
	if c.Booking.DefaultStartHour >= c.Booking.DefaultEndHour {
		return fmt.Errorf("config: booking.default_start_hour must be before booking.default_end_hour")
	}
	if len(c.Booking.DefaultWeekdays) == 0 {
		return fmt.Errorf("config: booking.default_weekdays must not be empty")
	}
	return nil
}
