package flow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/massage-bot/internal/config"
	domain "github.com/BruksfildServices01/massage-bot/internal/domain/booking"
	"github.com/BruksfildServices01/massage-bot/internal/scheduler"
	"github.com/BruksfildServices01/massage-bot/internal/session"
	adminuc "github.com/BruksfildServices01/massage-bot/internal/usecase/admin"
	bookinguc "github.com/BruksfildServices01/massage-bot/internal/usecase/booking"
)

// Incoming is one user message, already stripped of transport details.
type Incoming struct {
	UserID int64
	ChatID int64
	Name   string

	Text    string
	Command string
	Args    []string
}

// Reply is outbound text plus an optional button keyboard, one row per
// inner slice.
type Reply struct {
	Text     string
	Keyboard [][]string
}

// Engine drives the per-user booking state machine. All selection checks
// are strict membership against the current option set; anything else is
// a silent no-op.
type Engine struct {
	cfg      *config.Config
	sessions session.Store

	avail  *bookinguc.GetAvailability
	days   *bookinguc.ListDays
	create *bookinguc.CreateBooking

	adminList  *adminuc.ListBookings
	adminStats *adminuc.SourceStats
	adminPrune *adminuc.PruneOld

	sched scheduler.Scheduler

	loc *time.Location
	now func() time.Time
	log *zap.Logger
}

type Deps struct {
	Config   *config.Config
	Sessions session.Store

	Availability  *bookinguc.GetAvailability
	ListDays      *bookinguc.ListDays
	CreateBooking *bookinguc.CreateBooking

	AdminList  *adminuc.ListBookings
	AdminStats *adminuc.SourceStats
	AdminPrune *adminuc.PruneOld

	Scheduler scheduler.Scheduler

	Location *time.Location
	Now      func() time.Time
	Log      *zap.Logger
}

func NewEngine(d Deps) *Engine {
	now := d.Now
	if now == nil {
		now = func() time.Time { return time.Now().In(d.Location) }
	}
	return &Engine{
		cfg:        d.Config,
		sessions:   d.Sessions,
		avail:      d.Availability,
		days:       d.ListDays,
		create:     d.CreateBooking,
		adminList:  d.AdminList,
		adminStats: d.AdminStats,
		adminPrune: d.AdminPrune,
		sched:      d.Scheduler,
		loc:        d.Location,
		now:        now,
		log:        d.Log,
	}
}

// Handle routes one message. A nil reply slice means the input was
// dropped silently. Errors are storage/scheduling failures; the caller
// logs them and abandons the update.
func (e *Engine) Handle(ctx context.Context, in Incoming) ([]Reply, error) {
	switch in.Command {
	case "start":
		return e.handleStart(ctx, in)
	case "admin":
		return e.handleAdminEntry(ctx, in)
	}

	switch in.Text {
	case BtnSignup:
		return e.handleSignup(ctx, in)
	case BtnBack:
		return e.handleBack(ctx, in)
	}

	sess, err := e.sessions.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	switch sess.State {
	case session.StateChoosingService:
		return e.handleServiceChoice(ctx, in, sess)
	case session.StateChoosingDay:
		return e.handleDayChoice(ctx, in, sess)
	case session.StateChoosingTime:
		return e.handleTimeChoice(ctx, in, sess)
	case session.StateAdmin:
		return e.handleAdminAction(ctx, in, sess)
	}
	return nil, nil
}

// --------------------------------------------------
// Entry points
// --------------------------------------------------

func (e *Engine) handleStart(ctx context.Context, in Incoming) ([]Reply, error) {
	source := "organic"
	if len(in.Args) > 0 {
		source = in.Args[0]
	}

	if err := e.sessions.Put(ctx, in.UserID, &session.Session{
		State:  session.StateIdle,
		Source: source,
	}); err != nil {
		return nil, err
	}

	return []Reply{{
		Text:     fmt.Sprintf(msgGreeting, e.cfg.MasterName),
		Keyboard: [][]string{{BtnSignup}},
	}}, nil
}

func (e *Engine) handleSignup(ctx context.Context, in Incoming) ([]Reply, error) {
	sess, err := e.sessions.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		sess = &session.Session{}
	}

	sess.State = session.StateChoosingService
	sess.Service = ""
	sess.Date = ""
	if err := e.sessions.Put(ctx, in.UserID, sess); err != nil {
		return nil, err
	}

	var rows [][]string
	for _, s := range e.cfg.Services {
		rows = append(rows, []string{s.Label})
	}
	rows = append(rows, []string{BtnBack})

	return []Reply{{Text: msgChooseService, Keyboard: rows}}, nil
}

func (e *Engine) handleBack(ctx context.Context, in Incoming) ([]Reply, error) {
	sess, err := e.sessions.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	sess.State = session.StateIdle
	sess.Service = ""
	sess.Date = ""
	if err := e.sessions.Put(ctx, in.UserID, sess); err != nil {
		return nil, err
	}

	return []Reply{{
		Text:     msgMainMenu,
		Keyboard: [][]string{{BtnSignup}},
	}}, nil
}

// --------------------------------------------------
// Booking branch
// --------------------------------------------------

func (e *Engine) handleServiceChoice(
	ctx context.Context,
	in Incoming,
	sess *session.Session,
) ([]Reply, error) {

	svc, ok := e.cfg.ServiceByLabel(in.Text)
	if !ok {
		return nil, nil
	}

	days, err := e.days.Execute(ctx, svc)
	if err != nil {
		return nil, err
	}

	sess.State = session.StateChoosingDay
	sess.Service = svc.Label
	if err := e.sessions.Put(ctx, in.UserID, sess); err != nil {
		return nil, err
	}

	var rows [][]string
	for _, d := range days {
		name := weekdayNames[domain.WeekdayCode(d.Date.Weekday())]
		status := dayBusy
		if len(d.Slots) > 0 {
			status = fmt.Sprintf(daySlotsTmpl, strings.Join(d.Slots, ", "))
		}
		rows = append(rows, []string{fmt.Sprintf("%s (%s)", name, status)})
	}
	rows = append(rows, []string{BtnBack})

	return []Reply{{Text: msgChooseDay, Keyboard: rows}}, nil
}

func (e *Engine) handleDayChoice(
	ctx context.Context,
	in Incoming,
	sess *session.Session,
) ([]Reply, error) {

	// day buttons are "<weekday> (<status>)"; only the leading word matters
	fields := strings.Fields(in.Text)
	if len(fields) == 0 {
		return nil, nil
	}
	code, ok := weekdayByName[strings.ToLower(fields[0])]
	if !ok {
		return nil, nil
	}

	date, ok := e.days.ResolveDate(code)
	if !ok {
		return nil, nil
	}

	svc, ok := e.cfg.ServiceByLabel(sess.Service)
	if !ok {
		return nil, nil
	}

	slots, err := e.avail.Execute(ctx, date, svc)
	if err != nil {
		return nil, err
	}

	sess.State = session.StateChoosingTime
	sess.Date = date
	if err := e.sessions.Put(ctx, in.UserID, sess); err != nil {
		return nil, err
	}

	return []Reply{{Text: msgChooseTime, Keyboard: timeKeyboard(slots)}}, nil
}

func (e *Engine) handleTimeChoice(
	ctx context.Context,
	in Incoming,
	sess *session.Session,
) ([]Reply, error) {

	if _, err := time.Parse("15:04", in.Text); err != nil {
		return nil, nil
	}

	svc, ok := e.cfg.ServiceByLabel(sess.Service)
	if !ok || sess.Date == "" {
		return nil, nil
	}

	ap, err := e.create.Execute(ctx, bookinguc.CreateBookingInput{
		UserID:  in.UserID,
		Name:    in.Name,
		Service: sess.Service,
		Date:    sess.Date,
		Time:    in.Text,
		Source:  sess.Source,
	})
	if domain.IsBusiness(err, domain.CodeSlotTaken) {
		slots, aerr := e.avail.Execute(ctx, sess.Date, svc)
		if aerr != nil {
			return nil, aerr
		}
		return []Reply{{Text: msgSlotTaken, Keyboard: timeKeyboard(slots)}}, nil
	}
	if err != nil {
		return nil, err
	}

	e.scheduleReminders(ctx, in.ChatID, ap.Date, ap.Time)

	sess.State = session.StateIdle
	sess.Service = ""
	sess.Date = ""
	if err := e.sessions.Put(ctx, in.UserID, sess); err != nil {
		return nil, err
	}

	return []Reply{
		{
			Text:     fmt.Sprintf(msgConfirmed, ap.Service, ap.Date, ap.Time),
			Keyboard: [][]string{{BtnSignup}},
		},
		{Text: fmt.Sprintf(msgChannel, e.cfg.ChannelUsername)},
	}, nil
}

func (e *Engine) scheduleReminders(ctx context.Context, chatID int64, date, timeHM string) {
	at, err := time.ParseInLocation("2006-01-02 15:04", date+" "+timeHM, e.loc)
	if err != nil {
		e.log.Error("bad appointment datetime", zap.String("date", date), zap.String("time", timeHM))
		return
	}

	for _, r := range scheduler.ReminderPlan(at, e.now(), e.cfg.MasterName) {
		if err := e.sched.Schedule(ctx, chatID, r); err != nil {
			// booking already persisted; a lost reminder is not fatal
			e.log.Warn("reminder scheduling failed", zap.Int64("chat_id", chatID), zap.Error(err))
		}
	}
}

func timeKeyboard(slots []string) [][]string {
	var rows [][]string
	for _, s := range slots {
		rows = append(rows, []string{s})
	}
	return append(rows, []string{BtnBack})
}

// --------------------------------------------------
// Admin branch
// --------------------------------------------------

func (e *Engine) handleAdminEntry(ctx context.Context, in Incoming) ([]Reply, error) {
	if !e.cfg.IsAdmin(in.UserID) {
		return []Reply{{Text: msgAdminDenied}}, nil
	}

	sess, err := e.sessions.Get(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		sess = &session.Session{}
	}
	sess.State = session.StateAdmin
	if err := e.sessions.Put(ctx, in.UserID, sess); err != nil {
		return nil, err
	}

	return []Reply{{
		Text: msgAdminMenu,
		Keyboard: [][]string{
			{BtnAdminList},
			{BtnAdminStats},
			{BtnAdminPrune},
			{BtnBack},
		},
	}}, nil
}

func (e *Engine) handleAdminAction(
	ctx context.Context,
	in Incoming,
	_ *session.Session,
) ([]Reply, error) {

	if !e.cfg.IsAdmin(in.UserID) {
		return nil, nil
	}

	switch in.Text {
	case BtnAdminList:
		records, err := e.adminList.Execute(ctx)
		if err != nil {
			return nil, err
		}
		if len(records) == 0 {
			return []Reply{{Text: msgNoRecords}}, nil
		}
		replies := make([]Reply, 0, len(records))
		for _, ap := range records {
			replies = append(replies, Reply{
				Text: fmt.Sprintf(msgRecord, ap.Name, ap.Date, ap.Time, ap.Service),
			})
		}
		return replies, nil

	case BtnAdminStats:
		stats, err := e.adminStats.Execute(ctx)
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		b.WriteString(msgStatsHeader)
		for _, s := range stats {
			fmt.Fprintf(&b, "- %s: %d\n", s.Source, s.Count)
		}
		return []Reply{{Text: b.String()}}, nil

	case BtnAdminPrune:
		today := e.now().Format("2006-01-02")
		if _, err := e.adminPrune.Execute(ctx, today); err != nil {
			return nil, err
		}
		return []Reply{{Text: msgPruned}}, nil
	}

	return nil, nil
}
