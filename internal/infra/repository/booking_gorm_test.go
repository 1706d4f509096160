package repository

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/massage-bot/internal/models"
)

func newTestRepo(t *testing.T) *BookingGormRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.Appointment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewBookingGormRepository(db)
}

func seed(t *testing.T, r *BookingGormRepository, aps ...models.Appointment) {
	t.Helper()
	for i := range aps {
		if err := r.Create(context.Background(), &aps[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func TestBookingRepository_CreateAndByDate(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seed(t, r,
		models.Appointment{Ref: "a", UserID: 1, Name: "Аня", Service: "Общий массаж", Date: "2025-06-03", Time: "10:15", UTMSource: "organic"},
		models.Appointment{Ref: "b", UserID: 2, Name: "Вера", Service: "Массаж головы", Date: "2025-06-03", Time: "09:00", UTMSource: "organic"},
		models.Appointment{Ref: "c", UserID: 3, Name: "Оля", Service: "Массаж головы", Date: "2025-06-04", Time: "09:00", UTMSource: "ads"},
	)

	got, err := r.ByDate(ctx, "2025-06-03")
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	// ordered by time
	if got[0].Time != "09:00" || got[1].Time != "10:15" {
		t.Fatalf("order = %s, %s", got[0].Time, got[1].Time)
	}

	if got, err := r.ByDate(ctx, "2025-06-05"); err != nil || len(got) != 0 {
		t.Fatalf("empty date: %v %v", got, err)
	}
}

func TestBookingRepository_CountAt(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seed(t, r, models.Appointment{Ref: "a", Service: "x", Date: "2025-06-03", Time: "09:00", UTMSource: "organic"})

	n, err := r.CountAt(ctx, "2025-06-03", "09:00")
	if err != nil || n != 1 {
		t.Fatalf("count = %d, %v", n, err)
	}
	n, err = r.CountAt(ctx, "2025-06-03", "10:15")
	if err != nil || n != 0 {
		t.Fatalf("count free slot = %d, %v", n, err)
	}
}

func TestBookingRepository_CountBySource(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seed(t, r,
		models.Appointment{Ref: "a", Service: "x", Date: "2025-06-03", Time: "09:00", UTMSource: "organic"},
		models.Appointment{Ref: "b", Service: "x", Date: "2025-06-03", Time: "10:15", UTMSource: "organic"},
		models.Appointment{Ref: "c", Service: "x", Date: "2025-06-04", Time: "09:00", UTMSource: "spring_promo"},
	)

	stats, err := r.CountBySource(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d sources, want 2", len(stats))
	}
	// ordered by count desc
	if stats[0].Source != "organic" || stats[0].Count != 2 {
		t.Fatalf("top source = %+v", stats[0])
	}
	if stats[1].Source != "spring_promo" || stats[1].Count != 1 {
		t.Fatalf("second source = %+v", stats[1])
	}
}

func TestBookingRepository_DeleteBefore(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seed(t, r,
		models.Appointment{Ref: "a", Service: "x", Date: "2025-05-20", Time: "09:00", UTMSource: "organic"},
		models.Appointment{Ref: "b", Service: "x", Date: "2025-06-01", Time: "09:00", UTMSource: "organic"},
		models.Appointment{Ref: "c", Service: "x", Date: "2025-06-03", Time: "09:00", UTMSource: "organic"},
	)

	removed, err := r.DeleteBefore(ctx, "2025-06-02")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if removed != 2 {
		t.Fatalf("removed %d, want 2", removed)
	}

	rest, err := r.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(rest) != 1 || rest[0].Date != "2025-06-03" {
		t.Fatalf("remaining = %+v", rest)
	}
}

func TestBookingRepository_AllOrdered(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	seed(t, r,
		models.Appointment{Ref: "a", Service: "x", Date: "2025-06-04", Time: "09:00", UTMSource: "organic"},
		models.Appointment{Ref: "b", Service: "x", Date: "2025-06-03", Time: "10:15", UTMSource: "organic"},
		models.Appointment{Ref: "c", Service: "x", Date: "2025-06-03", Time: "09:00", UTMSource: "organic"},
	)

	all, err := r.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	want := []string{"2025-06-03 09:00", "2025-06-03 10:15", "2025-06-04 09:00"}
	for i, ap := range all {
		if got := ap.Date + " " + ap.Time; got != want[i] {
			t.Fatalf("row %d = %s, want %s", i, got, want[i])
		}
	}
}
