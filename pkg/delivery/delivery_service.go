package delivery

import (
	"sync"
	"time"

	"chefy/domain"
	"chefy/entities"
	"github.com/gofiber/fiber/v2/log"
	"github.com/jinzhu/now"
)

type (
	DeliveryService interface {
		Today() entities.Day
		Selected() entities.Day
		Select(day entities.Day) bool
		IsToday(d entities.Day) bool
		IsSelected(d entities.Day) bool
		IsPast(d entities.Day) bool
		Horizon(start entities.Day, days int) []entities.Day
		DefaultHorizon() []entities.Day
		MonthGrid(year int, month time.Month) []Cell
	}

	// Options configure the selector. A negative OffsetDays falls back to
	// the default offset; zero preselects today.
	Options struct {
		Now         func() time.Time
		Location    *time.Location
		OffsetDays  int
		HorizonDays int
	}

	// Cell is one slot of a Sunday-first month grid. Blank cells pad the
	// first week and carry a zero Day.
	Cell struct {
		Day      entities.Day
		Blank    bool
		Today    bool
		Selected bool
		Past     bool
	}

	deliveryService struct {
		mu          sync.RWMutex
		now         func() time.Time
		loc         *time.Location
		horizonDays int
		selected    entities.Day
	}
)

func NewDeliveryService(opts Options) DeliveryService {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.OffsetDays < 0 {
		opts.OffsetDays = domain.DefaultDeliveryOffsetDays
	}
	if opts.HorizonDays <= 0 {
		opts.HorizonDays = domain.DefaultHorizonDays
	}

	s := &deliveryService{
		now:         opts.Now,
		loc:         opts.Location,
		horizonDays: opts.HorizonDays,
	}
	s.selected = s.Today().AddDays(opts.OffsetDays)
	return s
}

// Today is the current calendar day in the configured location.
func (s *deliveryService) Today() entities.Day {
	return entities.DayOf(now.With(s.now().In(s.loc)).BeginningOfDay())
}

func (s *deliveryService) Selected() entities.Day {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// Select makes day the active delivery date. Past days are ignored.
func (s *deliveryService) Select(day entities.Day) bool {
	if day.IsZero() || s.IsPast(day) {
		log.Debugw("delivery date rejected", "date", day.String())
		return false
	}
	s.mu.Lock()
	s.selected = day
	s.mu.Unlock()
	return true
}

func (s *deliveryService) IsToday(d entities.Day) bool {
	return d.Equal(s.Today())
}

func (s *deliveryService) IsSelected(d entities.Day) bool {
	return d.Equal(s.Selected())
}

func (s *deliveryService) IsPast(d entities.Day) bool {
	return d.Before(s.Today())
}

// Horizon lists days consecutive calendar days from start. A non-positive
// count yields the configured horizon length.
func (s *deliveryService) Horizon(start entities.Day, days int) []entities.Day {
	if days <= 0 {
		days = s.horizonDays
	}
	out := make([]entities.Day, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, start.AddDays(i))
	}
	return out
}

func (s *deliveryService) DefaultHorizon() []entities.Day {
	return s.Horizon(s.Today(), s.horizonDays)
}

func (s *deliveryService) MonthGrid(year int, month time.Month) []Cell {
	first := now.With(time.Date(year, month, 1, 12, 0, 0, 0, time.UTC))
	start := entities.DayOf(first.BeginningOfMonth())
	end := entities.DayOf(first.EndOfMonth())

	today := s.Today()
	selected := s.Selected()

	lead := int(start.Weekday())
	cells := make([]Cell, 0, lead+end.Date())
	for i := 0; i < lead; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := start; !d.After(end); d = d.AddDays(1) {
		cells = append(cells, Cell{
			Day:      d,
			Today:    d.Equal(today),
			Selected: d.Equal(selected),
			Past:     d.Before(today),
		})
	}
	return cells
}
