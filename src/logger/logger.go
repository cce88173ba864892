package logger

import (
	"os"

	"go.uber.org/zap"
)

// New สร้าง zap logger ตาม APP_ENV
// production = JSON logs, อย่างอื่น = console แบบอ่านง่าย
func New() *zap.Logger {
	var log *zap.Logger
	var err error

	if os.Getenv("APP_ENV") == "production" {
		log, err = zap.NewProduction()
	} else {
		log, err = zap.NewDevelopment()
	}
	if err != nil {
		// fallback: logger แบบไม่ log อะไรเลย ดีกว่า panic ตอน start
		return zap.NewNop()
	}
	return log
}
