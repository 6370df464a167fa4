package db

import (
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/LavaJatoPro/carwash-scheduler/internal/config"
	"github.com/LavaJatoPro/carwash-scheduler/internal/models"
	"github.com/LavaJatoPro/carwash-scheduler/internal/settings"
)

func NewDB(cfg *config.Config, log *logrus.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.WithError(err).Fatal("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.CustomerAccount{},
		&models.VehicleType{},
		&models.Vehicle{},
		&models.Service{},
		&models.Schedule{},
		&models.Setting{},
		&models.AuditLog{},
	); err != nil {
		log.WithError(err).Fatal("failed to migrate")
	}

	seed(db, log)

	return db
}

// seed inserts the defaults a fresh installation expects: an admin
// account, the vehicle size classes, a starter catalog and the
// scheduling settings.
func seed(db *gorm.DB, log *logrus.Logger) {
	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err == nil {
			db.Create(&models.User{
				Name:     "Administrador",
				Email:    "admin@carwash.local",
				Password: string(hash),
				Role:     "admin",
				Active:   true,
			})
		}
	}

	types := []models.VehicleType{
		{Name: "Pequeno", Description: "Carros compactos, motos", Active: true},
		{Name: "Médio", Description: "Sedans, SUVs pequenos", Active: true},
		{Name: "Grande", Description: "SUVs grandes, vans, caminhões pequenos", Active: true},
	}
	for _, t := range types {
		db.Where(models.VehicleType{Name: t.Name}).FirstOrCreate(&t)
	}

	var svcCount int64
	db.Model(&models.Service{}).Count(&svcCount)
	if svcCount == 0 {
		var small, medium, large models.VehicleType
		db.Where("name = ?", "Pequeno").First(&small)
		db.Where("name = ?", "Médio").First(&medium)
		db.Where("name = ?", "Grande").First(&large)

		db.Create(&[]models.Service{
			{Name: "Lavagem Simples", Description: "Lavagem externa básica", VehicleTypeID: small.ID, Price: 25, DurationMinutes: 30, Active: true},
			{Name: "Lavagem Simples", Description: "Lavagem externa básica", VehicleTypeID: medium.ID, Price: 35, DurationMinutes: 45, Active: true},
			{Name: "Lavagem Simples", Description: "Lavagem externa básica", VehicleTypeID: large.ID, Price: 50, DurationMinutes: 60, Active: true},
			{Name: "Lavagem Completa", Description: "Lavagem externa e interna", VehicleTypeID: small.ID, Price: 40, DurationMinutes: 45, Active: true},
			{Name: "Lavagem Completa", Description: "Lavagem externa e interna", VehicleTypeID: medium.ID, Price: 55, DurationMinutes: 60, Active: true},
			{Name: "Lavagem Completa", Description: "Lavagem externa e interna", VehicleTypeID: large.ID, Price: 75, DurationMinutes: 90, Active: true},
		})
	}

	defaults := []models.Setting{
		{Key: settings.KeyHoursStart, Value: "08:00", Description: "Horário de início do expediente"},
		{Key: settings.KeyHoursEnd, Value: "18:00", Description: "Horário de fim do expediente"},
		{Key: settings.KeyMaxConcurrent, Value: "3", Description: "Máximo de agendamentos simultâneos"},
		{Key: settings.KeyInterval, Value: "30", Description: "Intervalo entre agendamentos (minutos)"},
	}
	for _, s := range defaults {
		db.Where(models.Setting{Key: s.Key}).FirstOrCreate(&s)
	}

	log.Info("database ready")
}
