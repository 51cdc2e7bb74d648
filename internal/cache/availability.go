package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// TTL curto: o cache só amortece rajadas de consulta do
// calendário público; a fonte de verdade continua sendo o banco.
const datesTTL = 60 * time.Second

// Availability guarda no Redis o resultado do scanner de datas.
// Todas as operações degradam silenciosamente: sem Redis (ou com
// Redis fora do ar) o caller simplesmente recalcula.
type Availability struct {
	rdb *redis.Client
}

func NewAvailability(rdb *redis.Client) *Availability {
	if rdb == nil {
		return nil
	}
	return &Availability{rdb: rdb}
}

func datesKey(artistID uint, durationMinutes int) string {
	return fmt.Sprintf("availability:dates:%d:%d", artistID, durationMinutes)
}

func (c *Availability) GetDates(
	ctx context.Context,
	artistID uint,
	durationMinutes int,
) ([]string, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, datesKey(artistID, durationMinutes)).Result()
	if err != nil {
		return nil, false
	}

	var dates []string
	if err := json.Unmarshal([]byte(raw), &dates); err != nil {
		return nil, false
	}

	return dates, true
}

func (c *Availability) SetDates(
	ctx context.Context,
	artistID uint,
	durationMinutes int,
	dates []string,
) {

	if c == nil {
		return
	}

	raw, err := json.Marshal(dates)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, datesKey(artistID, durationMinutes), raw, datesTTL).Err(); err != nil {
		log.Println("availability cache set error:", err)
	}
}

// Invalidate apaga as datas cacheadas da artista em todas as
// durações. Chamado após qualquer mutação que mexa na agenda
// (reserva, cancelamento, exceção, expediente).
func (c *Availability) Invalidate(ctx context.Context, artistID uint) {
	if c == nil {
		return
	}

	pattern := fmt.Sprintf("availability:dates:%d:*", artistID)

	iter := c.rdb.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			log.Println("availability cache del error:", err)
		}
	}
	if err := iter.Err(); err != nil {
		log.Println("availability cache scan error:", err)
	}
}
