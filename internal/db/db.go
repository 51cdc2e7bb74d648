package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/luciddatattoo/studio-scheduler/internal/config"
	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.WorkingHours{},
		&models.AvailabilityOverride{},
		&models.BookingLink{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Defesa extra no banco: dois agendamentos confirmados da
	// mesma artista nunca se sobrepõem no mesmo dia. A aplicação
	// já valida dentro da transação; a constraint cobre qualquer
	// escrita fora dela.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        CREATE OR REPLACE FUNCTION hm_minutes(t text) RETURNS int
        IMMUTABLE LANGUAGE sql AS
        $$ SELECT split_part(t, ':', 1)::int * 60 + split_part(t, ':', 2)::int $$
    `)
	db.Exec(`
        DO $$ BEGIN
            ALTER TABLE appointments
            ADD CONSTRAINT appointments_no_overlap
            EXCLUDE USING gist (
                artist_id WITH =,
                date WITH =,
                int4range(hm_minutes(start_time), hm_minutes(end_time)) WITH &&
            )
            WHERE (status = 'confirmed');
        EXCEPTION WHEN duplicate_table OR duplicate_object THEN NULL;
        END $$
    `)

	return db
}
