// Package maintenance runs the nightly storage sweep: it totals blob usage
// against the plan quota and reports media records whose backing blob has
// gone missing. It reports only; reconciling an orphan is an admin decision,
// not an automated delete.
package maintenance

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/pro6vastgoed/cms-backend/internal/blob"
	"github.com/pro6vastgoed/cms-backend/internal/content"
)

type Sweeper struct {
	blobs   blob.Store
	media   *content.MediaRepo
	quotaMB int
	cron    *cron.Cron
}

func NewSweeper(blobs blob.Store, media *content.MediaRepo, quotaMB int) *Sweeper {
	return &Sweeper{blobs: blobs, media: media, quotaMB: quotaMB}
}

// Start schedules the sweep nightly at 03:00.
func (s *Sweeper) Start() {
	s.cron = cron.New()
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.Sweep(ctx); err != nil {
			log.Printf("storage sweep failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("failed to schedule storage sweep: %v", err)
		return
	}
	s.cron.Start()
	log.Println("storage sweep scheduled (nightly at 03:00)")
}

func (s *Sweeper) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Sweep runs one pass: usage total plus an orphan report.
func (s *Sweeper) Sweep(ctx context.Context) error {
	files, err := s.blobs.List(ctx)
	if err != nil {
		return err
	}

	var used int64
	byURL := make(map[string]bool, len(files))
	for _, f := range files {
		used += f.Size
		byURL[f.URL] = true
	}

	quotaBytes := int64(s.quotaMB) << 20
	log.Printf("storage sweep: %d blobs, %.1f MB of %d MB used",
		len(files), float64(used)/(1<<20), s.quotaMB)
	if quotaBytes > 0 && used > quotaBytes {
		log.Printf("storage sweep: usage exceeds plan quota")
	}

	records, err := s.media.All(ctx)
	if err != nil {
		return err
	}
	for _, m := range records {
		if !byURL[m.URL] {
			log.Printf("storage sweep: media record %s (%s) has no backing blob at %s", m.ID, m.Name, m.URL)
		}
	}

	return nil
}
