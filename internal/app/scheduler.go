package app

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Auditor periodically reports duplicate domain names. It only reads; the
// dedupe command is the way to fix what it finds.
type Auditor struct {
	maintenance *MaintenanceService
	schedule    string
	timeout     time.Duration
	cron        *cron.Cron
}

func NewAuditor(maintenance *MaintenanceService, schedule string, timeout time.Duration) *Auditor {
	if timeout <= 0 {
		timeout = time.Minute
	}
	return &Auditor{
		maintenance: maintenance,
		schedule:    schedule,
		timeout:     timeout,
	}
}

// Start registers the audit job. An empty schedule disables the auditor.
func (a *Auditor) Start() error {
	if a.schedule == "" {
		log.Println("[Auditor] Disabled (no AUDIT_SCHEDULE)")
		return nil
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	a.cron = cron.New(cron.WithParser(parser))
	if _, err := a.cron.AddFunc(a.schedule, a.Run); err != nil {
		return err
	}
	a.cron.Start()
	log.Printf("[Auditor] Started (schedule %q)", a.schedule)
	return nil
}

func (a *Auditor) Stop() {
	if a.cron == nil {
		return
	}
	<-a.cron.Stop().Done()
	log.Println("[Auditor] Stopped")
}

func (a *Auditor) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	groups, err := a.maintenance.FindDuplicates(ctx)
	if err != nil {
		log.Printf("[Auditor] Failed to load domains: %v", err)
		return
	}
	if len(groups) == 0 {
		log.Println("[Auditor] No duplicate domains")
		return
	}
	for _, g := range groups {
		log.Printf("[Auditor] Domain name %q is shared by %d domains (first %s)", g.Name, len(g.Domains), g.Domains[0].ID)
	}
}
