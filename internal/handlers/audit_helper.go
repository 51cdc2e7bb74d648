package handlers

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/luciddatattoo/studio-scheduler/internal/models"
)

// writeAudit grava o log direto, sem passar pelo dispatcher —
// para handlers que já estão com o db na mão. Falha de audit
// nunca derruba a operação.
func writeAudit(
	db *gorm.DB,
	artistID uint,
	userID *uint,
	action string,
	entity string,
	entityID *uint,
	meta any,
) {

	var payload string
	if meta != nil {
		if b, err := json.Marshal(meta); err == nil {
			payload = string(b)
		}
	}

	entry := models.AuditLog{
		ArtistID: artistID,
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: payload,
	}

	db.Create(&entry)
}
