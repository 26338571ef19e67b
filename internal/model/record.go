package model

import (
	"strconv"
	"strings"
)

// Record is a single exhibition's metrics. It serves both as a row of
// the historical reference corpus and as the current exhibition under
// evaluation; the two are never mixed — corpus rows are read-only after
// loading, and the current record is supplied fresh per analysis run.
//
// Every metric is optional. A nil pointer means the value is missing;
// downstream statistics treat missing as absent, never as zero.
type Record struct {
	Title string   `json:"title" csv:"title"`
	Type  *float64 `json:"exhibition_type,omitempty" csv:"exhibition_type,omitempty"` // 0 = special exhibition, excluded from comparison

	Days             *float64 `json:"exhibition_days,omitempty" csv:"exhibition_days,omitempty"`
	ArtistsTotal     *float64 `json:"artists_total,omitempty" csv:"artists_total,omitempty"`
	ArtistsDomestic  *float64 `json:"artists_domestic,omitempty" csv:"artists_domestic,omitempty"`
	ArtistsForeign   *float64 `json:"artists_foreign,omitempty" csv:"artists_foreign,omitempty"`
	ArtistsColl      *float64 `json:"artists_collection,omitempty" csv:"artists_collection,omitempty"`
	BudgetTotal      *float64 `json:"budget_total,omitempty" csv:"budget_total,omitempty"`
	BudgetExhibition *float64 `json:"budget_exhibition,omitempty" csv:"budget_exhibition,omitempty"`
	BudgetSupp       *float64 `json:"budget_supplementary,omitempty" csv:"budget_supplementary,omitempty"`
	BudgetPlanned    *float64 `json:"budget_planned,omitempty" csv:"budget_planned,omitempty"`
	BudgetExecRate   *float64 `json:"budget_execution_rate,omitempty" csv:"budget_execution_rate,omitempty"`
	RevenueTotal     *float64 `json:"revenue_total,omitempty" csv:"revenue_total,omitempty"`
	RevenueTicket    *float64 `json:"revenue_ticket,omitempty" csv:"revenue_ticket,omitempty"`
	VisitorsTotal    *float64 `json:"visitors_total,omitempty" csv:"visitors_total,omitempty"`
	VisitorsDaily    *float64 `json:"visitors_daily_avg,omitempty" csv:"visitors_daily_avg,omitempty"`
	VisitorsPaid     *float64 `json:"visitors_paid,omitempty" csv:"visitors_paid,omitempty"`
	VisitorsFree     *float64 `json:"visitors_free,omitempty" csv:"visitors_free,omitempty"`
	VisitorsStudent  *float64 `json:"visitors_student,omitempty" csv:"visitors_student,omitempty"`
	VisitorsGroup    *float64 `json:"visitors_group,omitempty" csv:"visitors_group,omitempty"`
	VisitorsDiscover *float64 `json:"visitors_discover_pass,omitempty" csv:"visitors_discover_pass,omitempty"`
	VisitorsArtPass  *float64 `json:"visitors_art_pass,omitempty" csv:"visitors_art_pass,omitempty"`
	StaffTotal       *float64 `json:"staff_total,omitempty" csv:"staff_total,omitempty"`
	StaffPaid        *float64 `json:"staff_paid,omitempty" csv:"staff_paid,omitempty"`
	StaffVolunteer   *float64 `json:"staff_volunteer,omitempty" csv:"staff_volunteer,omitempty"`
	StaffSupport     *float64 `json:"staff_support,omitempty" csv:"staff_support,omitempty"`
	ProgramCount     *float64 `json:"program_count,omitempty" csv:"program_count,omitempty"`
	ProgramSessions  *float64 `json:"program_sessions,omitempty" csv:"program_sessions,omitempty"`
	Participants     *float64 `json:"program_participants,omitempty" csv:"program_participants,omitempty"`
	DocentTotal      *float64 `json:"docent_participants,omitempty" csv:"docent_participants,omitempty"`
	DocentRegular    *float64 `json:"docent_regular,omitempty" csv:"docent_regular,omitempty"`
	DocentSpecial    *float64 `json:"docent_special,omitempty" csv:"docent_special,omitempty"`
	Opening          *float64 `json:"opening_attendance,omitempty" csv:"opening_attendance,omitempty"`
	ArtworksTotal    *float64 `json:"artworks_total,omitempty" csv:"artworks_total,omitempty"`
	ArtworksNew      *float64 `json:"artworks_new,omitempty" csv:"artworks_new,omitempty"`
	ArtworksOld      *float64 `json:"artworks_old,omitempty" csv:"artworks_old,omitempty"`
	ArtworksPainting *float64 `json:"artworks_painting,omitempty" csv:"artworks_painting,omitempty"`
	ArtworksSculpt   *float64 `json:"artworks_sculpture,omitempty" csv:"artworks_sculpture,omitempty"`
	ArtworksPhoto    *float64 `json:"artworks_photo,omitempty" csv:"artworks_photo,omitempty"`
	ArtworksInstall  *float64 `json:"artworks_installation,omitempty" csv:"artworks_installation,omitempty"`
	ArtworksMedia    *float64 `json:"artworks_media,omitempty" csv:"artworks_media,omitempty"`
	ArtworksOther    *float64 `json:"artworks_other,omitempty" csv:"artworks_other,omitempty"`
	PressCount       *float64 `json:"press_count,omitempty" csv:"press_count,omitempty"`
	WebInvitations   *float64 `json:"web_invitations,omitempty" csv:"web_invitations,omitempty"`
	NewsletterRate   *float64 `json:"newsletter_open_rate,omitempty" csv:"newsletter_open_rate,omitempty"`
	SNSPosts         *float64 `json:"sns_posts,omitempty" csv:"sns_posts,omitempty"`
	SNSFeedback      *float64 `json:"sns_feedback,omitempty" csv:"sns_feedback,omitempty"`
	MembershipCount  *float64 `json:"membership_count,omitempty" csv:"membership_count,omitempty"`
	MembershipGrowth *float64 `json:"membership_growth,omitempty" csv:"membership_growth,omitempty"`

	// Derived ratios, populated by corpus.Derive.
	CostPerVisitor    *float64 `json:"cost_per_visitor,omitempty" csv:"cost_per_visitor,omitempty"`
	RevenueBudget     *float64 `json:"revenue_budget_ratio,omitempty" csv:"revenue_budget_ratio,omitempty"`
	PaidRatio         *float64 `json:"paid_ratio,omitempty" csv:"paid_ratio,omitempty"`
	ParticipationRate *float64 `json:"participation_rate,omitempty" csv:"participation_rate,omitempty"`
	VisitorsPerPress  *float64 `json:"visitors_per_press,omitempty" csv:"visitors_per_press,omitempty"`
}

// metricPtr returns the address of the struct field backing f, or nil
// for an unknown field. Single source of truth for Metric/SetMetric.
func (r *Record) metricPtr(f Field) **float64 {
	switch f {
	case FieldDays:
		return &r.Days
	case FieldArtistsTotal:
		return &r.ArtistsTotal
	case FieldArtistsDomestic:
		return &r.ArtistsDomestic
	case FieldArtistsForeign:
		return &r.ArtistsForeign
	case FieldArtistsColl:
		return &r.ArtistsColl
	case FieldBudgetTotal:
		return &r.BudgetTotal
	case FieldBudgetExhibition:
		return &r.BudgetExhibition
	case FieldBudgetSupp:
		return &r.BudgetSupp
	case FieldBudgetPlanned:
		return &r.BudgetPlanned
	case FieldBudgetExecRate:
		return &r.BudgetExecRate
	case FieldRevenueTotal:
		return &r.RevenueTotal
	case FieldRevenueTicket:
		return &r.RevenueTicket
	case FieldVisitorsTotal:
		return &r.VisitorsTotal
	case FieldVisitorsDaily:
		return &r.VisitorsDaily
	case FieldVisitorsPaid:
		return &r.VisitorsPaid
	case FieldVisitorsFree:
		return &r.VisitorsFree
	case FieldVisitorsStudent:
		return &r.VisitorsStudent
	case FieldVisitorsGroup:
		return &r.VisitorsGroup
	case FieldVisitorsDiscover:
		return &r.VisitorsDiscover
	case FieldVisitorsArtPass:
		return &r.VisitorsArtPass
	case FieldStaffTotal:
		return &r.StaffTotal
	case FieldStaffPaid:
		return &r.StaffPaid
	case FieldStaffVolunteer:
		return &r.StaffVolunteer
	case FieldStaffSupport:
		return &r.StaffSupport
	case FieldProgramCount:
		return &r.ProgramCount
	case FieldProgramSessions:
		return &r.ProgramSessions
	case FieldParticipants:
		return &r.Participants
	case FieldDocentTotal:
		return &r.DocentTotal
	case FieldDocentRegular:
		return &r.DocentRegular
	case FieldDocentSpecial:
		return &r.DocentSpecial
	case FieldOpening:
		return &r.Opening
	case FieldArtworksTotal:
		return &r.ArtworksTotal
	case FieldArtworksNew:
		return &r.ArtworksNew
	case FieldArtworksOld:
		return &r.ArtworksOld
	case FieldArtworksPainting:
		return &r.ArtworksPainting
	case FieldArtworksSculpt:
		return &r.ArtworksSculpt
	case FieldArtworksPhoto:
		return &r.ArtworksPhoto
	case FieldArtworksInstall:
		return &r.ArtworksInstall
	case FieldArtworksMedia:
		return &r.ArtworksMedia
	case FieldArtworksOther:
		return &r.ArtworksOther
	case FieldPressCount:
		return &r.PressCount
	case FieldWebInvitations:
		return &r.WebInvitations
	case FieldNewsletterRate:
		return &r.NewsletterRate
	case FieldSNSPosts:
		return &r.SNSPosts
	case FieldSNSFeedback:
		return &r.SNSFeedback
	case FieldMembershipCount:
		return &r.MembershipCount
	case FieldMembershipGrowth:
		return &r.MembershipGrowth
	case FieldCostPerVisitor:
		return &r.CostPerVisitor
	case FieldRevenueBudget:
		return &r.RevenueBudget
	case FieldPaidRatio:
		return &r.PaidRatio
	case FieldParticipationRate:
		return &r.ParticipationRate
	case FieldVisitorsPerPress:
		return &r.VisitorsPerPress
	}
	return nil
}

// Metric returns the value of field f, or nil when missing or unknown.
func (r *Record) Metric(f Field) *float64 {
	p := r.metricPtr(f)
	if p == nil {
		return nil
	}
	return *p
}

// SetMetric stores v into field f. Unknown fields are ignored.
func (r *Record) SetMetric(f Field, v float64) {
	if p := r.metricPtr(f); p != nil {
		*p = &v
	}
}

// ClearMetric marks field f missing.
func (r *Record) ClearMetric(f Field) {
	if p := r.metricPtr(f); p != nil {
		*p = nil
	}
}

// FromMap builds a Record from a generic field→value mapping keyed by
// Field keys, the ingestion-boundary adapter for caller-supplied current
// records. Values may be numbers or strings; strings are parsed
// leniently and parse failures leave the field missing — no error is
// ever returned for a bad value.
func FromMap(m map[string]any) Record {
	var r Record
	for k, v := range m {
		switch k {
		case "title":
			if s, ok := v.(string); ok {
				r.Title = strings.TrimSpace(s)
			}
		case "exhibition_type":
			if n := CoerceNumber(v); n != nil {
				r.Type = n
			}
		default:
			f := Field(k)
			if !f.Valid() {
				continue
			}
			if n := CoerceNumber(v); n != nil {
				r.SetMetric(f, *n)
			}
		}
	}
	return r
}

// CoerceNumber converts a raw cell value to a float, stripping thousand
// separators and common Korean counting units. Returns nil when the
// value is missing, a no-data sentinel, or unparseable.
func CoerceNumber(v any) *float64 {
	switch n := v.(type) {
	case nil:
		return nil
	case float64:
		return &n
	case float32:
		f := float64(n)
		return &f
	case int:
		f := float64(n)
		return &f
	case int64:
		f := float64(n)
		return &f
	case string:
		return parseNumericString(n)
	}
	return nil
}

// unit suffixes and decorations the report forms attach to numbers.
var numberStrip = strings.NewReplacer(
	",", "", "명", "", "원", "", "%", "", "약 ", "", "개", "", "회", "",
	"건", "", "점", "", "팀", "", "일", "",
)

func parseNumericString(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" || IsMissingToken(s) {
		return nil
	}
	s = strings.TrimSpace(numberStrip.Replace(s))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// IsMissingToken reports whether s is one of the no-data sentinels used
// in the reference spreadsheet.
func IsMissingToken(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "-", "—", "–", "N/A":
		return true
	}
	return false
}
