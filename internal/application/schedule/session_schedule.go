package schedule

import (
	"github.com/robfig/cron/v3"

	"weather-app/pkg/log"
	"weather-app/pkg/msg"
	"weather-app/pkg/resource"
)

// SessionReaper closes idle browser sessions
type SessionReaper interface {
	ReapIdle() int
}

type SessionScheduler struct {
	cron   *cron.Cron
	reaper SessionReaper
}

func NewSessionScheduler(reaper SessionReaper) *SessionScheduler {
	return &SessionScheduler{cron: cron.New(), reaper: reaper}
}

// InitSessionScheduleTasks initializes the idle session reaper
func (scheduler *SessionScheduler) InitSessionScheduleTasks() error {
	expression := resource.GetString("app.session.reaper.cron")

	if _, err := scheduler.cron.AddFunc(expression, scheduler.ReapIdleSessions); err != nil {
		log.Error(msg.GetMessage("session.reaper.invalid", err))
		return err
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("session.reaper.started", expression))
	return nil
}

func (scheduler *SessionScheduler) ReapIdleSessions() {
	log.Debug(msg.GetMessage("session.reaper.start"))

	reaped := scheduler.reaper.ReapIdle()

	log.Debug(msg.GetMessage("session.reaper.end", reaped))
}

// Stop waits for a running reap to finish
func (scheduler *SessionScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}
