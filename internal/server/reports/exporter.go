// Package reports exports the partner list as a CSV object to S3-compatible
// storage and hands back a time-limited download link.
package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/policydesk/internal/logging"
	"github.com/dmitrijs2005/policydesk/internal/server/metrics"
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/google/uuid"
)

type PartnerLister interface {
	ListSummaries(ctx context.Context) ([]*models.PartnerSummary, error)
}

// Report locates an uploaded export.
type Report struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type Exporter struct {
	partners PartnerLister
	store    ObjectStore
	linkTTL  time.Duration
	metrics  *metrics.Metrics
	logger   logging.Logger
	now      func() time.Time
}

func NewExporter(partners PartnerLister, store ObjectStore, linkTTL time.Duration, m *metrics.Metrics, logger logging.Logger) *Exporter {
	return &Exporter{
		partners: partners,
		store:    store,
		linkTTL:  linkTTL,
		metrics:  m,
		logger:   logger.With("module", "reports"),
		now:      time.Now,
	}
}

var header = []string{"id", "full_name", "partner_number", "national_pin", "partner_type", "created_at_utc",
	"is_foreign", "gender", "policy_count", "total_policy_amount", "requires_highlight"}

// ExportPartners uploads the current partner list and returns a presigned
// link valid for the configured duration.
func (e *Exporter) ExportPartners(ctx context.Context) (*Report, error) {
	list, err := e.partners.ListSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}

	body, err := encodeCSV(list)
	if err != nil {
		return nil, err
	}

	key := e.storageKey()
	if err := e.store.Put(ctx, key, body, "text/csv"); err != nil {
		return nil, err
	}

	url, err := e.store.PresignGet(ctx, key, e.linkTTL)
	if err != nil {
		return nil, err
	}

	e.metrics.IncrementReportsExported()
	e.logger.Info(ctx, "partner report exported", "key", key, "rows", len(list))
	return &Report{Key: key, URL: url}, nil
}

func (e *Exporter) storageKey() string {
	d := e.now().UTC()
	return fmt.Sprintf("reports/partners/%d/%02d/%02d/%v.csv", d.Year(), d.Month(), d.Day(), uuid.New())
}

func encodeCSV(list []*models.PartnerSummary) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, s := range list {
		pin := ""
		if s.NationalPIN != nil {
			pin = *s.NationalPIN
		}
		record := []string{
			strconv.FormatInt(s.ID, 10),
			s.FullName,
			s.PartnerNumber,
			pin,
			s.PartnerType.String(),
			s.CreatedAtUTC.Format(time.RFC3339),
			strconv.FormatBool(s.IsForeign),
			string(s.Gender),
			strconv.Itoa(s.PolicyCount),
			s.TotalPolicyAmount.StringFixed(2),
			strconv.FormatBool(s.RequiresHighlight),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("encode csv: %w", err)
	}
	return buf.Bytes(), nil
}
