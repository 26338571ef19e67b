package model

// Field identifies a single numeric metric in the exhibition vocabulary.
// The string value doubles as the key in YAML/JSON record files and CSV
// headers; the Korean reference spreadsheet headers are mapped to Fields
// at the ingestion boundary (see Header).
type Field string

const (
	FieldDays             Field = "exhibition_days"
	FieldArtistsTotal     Field = "artists_total"
	FieldArtistsDomestic  Field = "artists_domestic"
	FieldArtistsForeign   Field = "artists_foreign"
	FieldArtistsColl      Field = "artists_collection"
	FieldBudgetTotal      Field = "budget_total"
	FieldBudgetExhibition Field = "budget_exhibition"
	FieldBudgetSupp       Field = "budget_supplementary"
	FieldBudgetPlanned    Field = "budget_planned"
	FieldBudgetExecRate   Field = "budget_execution_rate"
	FieldRevenueTotal     Field = "revenue_total"
	FieldRevenueTicket    Field = "revenue_ticket"
	FieldVisitorsTotal    Field = "visitors_total"
	FieldVisitorsDaily    Field = "visitors_daily_avg"
	FieldVisitorsPaid     Field = "visitors_paid"
	FieldVisitorsFree     Field = "visitors_free"
	FieldVisitorsStudent  Field = "visitors_student"
	FieldVisitorsGroup    Field = "visitors_group"
	FieldVisitorsDiscover Field = "visitors_discover_pass"
	FieldVisitorsArtPass  Field = "visitors_art_pass"
	FieldStaffTotal       Field = "staff_total"
	FieldStaffPaid        Field = "staff_paid"
	FieldStaffVolunteer   Field = "staff_volunteer"
	FieldStaffSupport     Field = "staff_support"
	FieldProgramCount     Field = "program_count"
	FieldProgramSessions  Field = "program_sessions"
	FieldParticipants     Field = "program_participants"
	FieldDocentTotal      Field = "docent_participants"
	FieldDocentRegular    Field = "docent_regular"
	FieldDocentSpecial    Field = "docent_special"
	FieldOpening          Field = "opening_attendance"
	FieldArtworksTotal    Field = "artworks_total"
	FieldArtworksNew      Field = "artworks_new"
	FieldArtworksOld      Field = "artworks_old"
	FieldArtworksPainting Field = "artworks_painting"
	FieldArtworksSculpt   Field = "artworks_sculpture"
	FieldArtworksPhoto    Field = "artworks_photo"
	FieldArtworksInstall  Field = "artworks_installation"
	FieldArtworksMedia    Field = "artworks_media"
	FieldArtworksOther    Field = "artworks_other"
	FieldPressCount       Field = "press_count"
	FieldWebInvitations   Field = "web_invitations"
	FieldNewsletterRate   Field = "newsletter_open_rate"
	FieldSNSPosts         Field = "sns_posts"
	FieldSNSFeedback      Field = "sns_feedback"
	FieldMembershipCount  Field = "membership_count"
	FieldMembershipGrowth Field = "membership_growth"

	// Derived ratio fields, computed by corpus.Derive. Never present in
	// the raw spreadsheet.
	FieldCostPerVisitor    Field = "cost_per_visitor"
	FieldRevenueBudget     Field = "revenue_budget_ratio"
	FieldPaidRatio         Field = "paid_ratio"
	FieldParticipationRate Field = "participation_rate"
	FieldVisitorsPerPress  Field = "visitors_per_press"
)

// TitleHeader and TypeHeader are the reserved non-metric columns of the
// reference spreadsheet.
const (
	TitleHeader = "전시 제목"
	TypeHeader  = "전시 유형"
)

type fieldMeta struct {
	header string // reference spreadsheet column header (row 2)
	label  string // display name used in generated insight text
	unit   string
}

var fieldMetas = map[Field]fieldMeta{
	FieldDays:             {"전시 일수", "전시 일수", "일"},
	FieldArtistsTotal:     {"참여 작가 수_총(팀)", "참여 작가 수", "팀"},
	FieldArtistsDomestic:  {"참여 작가 수_국내", "국내 작가 수", "팀"},
	FieldArtistsForeign:   {"참여 작가 수_해외", "해외 작가 수", "팀"},
	FieldArtistsColl:      {"참여 작가 수_소장 작가", "소장 작가 수", "팀"},
	FieldBudgetTotal:      {"총 사용 예산", "총 사용 예산", "원"},
	FieldBudgetExhibition: {"전시 사용 예산", "전시 사용 예산", "원"},
	FieldBudgetSupp:       {"부대 사용 예산", "부대 사용 예산", "원"},
	FieldBudgetPlanned:    {"예산 계획액", "예산 계획액", "원"},
	FieldBudgetExecRate:   {"예산 집행률", "예산 집행률", "%"},
	FieldRevenueTotal:     {"총수입", "총수입", "원"},
	FieldRevenueTicket:    {"입장 수입", "입장 수입", "원"},
	FieldVisitorsTotal:    {"총 관객수", "총 관객수", "명"},
	FieldVisitorsDaily:    {"일평균 관객수", "일평균 관객수", "명"},
	FieldVisitorsPaid:     {"유료 관객수", "유료 관객수", "명"},
	FieldVisitorsFree:     {"무료/초대 관객수", "무료/초대 관객수", "명"},
	FieldVisitorsStudent:  {"학생 관객수(만 24세 이하)", "학생 관객수", "명"},
	FieldVisitorsGroup:    {"단체 관객수", "단체 관객수", "명"},
	FieldVisitorsDiscover: {"디스커버서울패스 관객수", "디스커버서울패스 관객수", "명"},
	FieldVisitorsArtPass:  {"예술인패스 관객수", "예술인패스 관객수", "명"},
	FieldStaffTotal:       {"운영 인력_총", "운영 인력", "명"},
	FieldStaffPaid:        {"스태프 수", "스태프 수", "명"},
	FieldStaffVolunteer:   {"봉사자 수", "봉사자 수", "명"},
	FieldStaffSupport:     {"지원단 수", "지원단 수", "명"},
	FieldProgramCount:     {"프로그램 총 수", "프로그램 수", "개"},
	FieldProgramSessions:  {"프로그램 총 회차", "프로그램 회차", "회"},
	FieldParticipants:     {"프로그램 참여 인원", "프로그램 참여 인원", "명"},
	FieldDocentTotal:      {"도슨트 참여 인원", "도슨트 참여 인원", "명"},
	FieldDocentRegular:    {"정기 도슨트 참여 인원", "정기 도슨트 참여 인원", "명"},
	FieldDocentSpecial:    {"특별 도슨트 참여 인원", "특별 도슨트 참여 인원", "명"},
	FieldOpening:          {"오프닝 참석 인원", "오프닝 참석 인원", "명"},
	FieldArtworksTotal:    {"출품 작품 수_총", "출품 작품 수", "점"},
	FieldArtworksNew:      {"출품 작품 수_신작", "신작 수", "점"},
	FieldArtworksOld:      {"출품 작품 수_구작", "구작 수", "점"},
	FieldArtworksPainting: {"출품 작품 수_회화", "회화 작품 수", "점"},
	FieldArtworksSculpt:   {"출품 작품 수_조각", "조각 작품 수", "점"},
	FieldArtworksPhoto:    {"출품 작품 수_사진", "사진 작품 수", "점"},
	FieldArtworksInstall:  {"출품 작품 수_설치", "설치 작품 수", "점"},
	FieldArtworksMedia:    {"출품 작품 수_미디어", "미디어 작품 수", "점"},
	FieldArtworksOther:    {"출품 작품 수_기타", "기타 작품 수", "점"},
	FieldPressCount:       {"언론 보도 건수", "언론 보도 건수", "건"},
	FieldWebInvitations:   {"웹 초청장 발송 수", "웹 초청장 발송 수", "건"},
	FieldNewsletterRate:   {"뉴스레터 오픈율", "뉴스레터 오픈율", "%"},
	FieldSNSPosts:         {"SNS 게시 건수", "SNS 게시 건수", "건"},
	FieldSNSFeedback:      {"SNS 피드백 합계", "SNS 피드백", "건"},
	FieldMembershipCount:  {"멤버십 회원수", "멤버십 회원수", "명"},
	FieldMembershipGrowth: {"멤버십 증가율", "멤버십 증가율", "%"},

	FieldCostPerVisitor:    {"", "관객당 비용", "원"},
	FieldRevenueBudget:     {"", "예산 회수율", ""},
	FieldPaidRatio:         {"", "유료 관객 비율", ""},
	FieldParticipationRate: {"", "프로그램 참여율", ""},
	FieldVisitorsPerPress:  {"", "보도건당 관객", "명"},
}

// AllFields lists every metric field in a stable order: spreadsheet
// columns first (spreadsheet order), derived ratios last.
var AllFields = []Field{
	FieldDays,
	FieldArtistsTotal, FieldArtistsDomestic, FieldArtistsForeign, FieldArtistsColl,
	FieldBudgetTotal, FieldBudgetExhibition, FieldBudgetSupp, FieldBudgetPlanned, FieldBudgetExecRate,
	FieldRevenueTotal, FieldRevenueTicket,
	FieldVisitorsTotal, FieldVisitorsDaily, FieldVisitorsPaid, FieldVisitorsFree,
	FieldVisitorsStudent, FieldVisitorsGroup, FieldVisitorsDiscover, FieldVisitorsArtPass,
	FieldStaffTotal, FieldStaffPaid, FieldStaffVolunteer, FieldStaffSupport,
	FieldProgramCount, FieldProgramSessions, FieldParticipants,
	FieldDocentTotal, FieldDocentRegular, FieldDocentSpecial, FieldOpening,
	FieldArtworksTotal, FieldArtworksNew, FieldArtworksOld,
	FieldArtworksPainting, FieldArtworksSculpt, FieldArtworksPhoto,
	FieldArtworksInstall, FieldArtworksMedia, FieldArtworksOther,
	FieldPressCount, FieldWebInvitations, FieldNewsletterRate,
	FieldSNSPosts, FieldSNSFeedback,
	FieldMembershipCount, FieldMembershipGrowth,
	FieldCostPerVisitor, FieldRevenueBudget, FieldPaidRatio,
	FieldParticipationRate, FieldVisitorsPerPress,
}

// DerivedFields are computed by corpus.Derive rather than loaded.
var DerivedFields = []Field{
	FieldCostPerVisitor, FieldRevenueBudget, FieldPaidRatio,
	FieldParticipationRate, FieldVisitorsPerPress,
}

// Header returns the reference spreadsheet column header for f, or ""
// for derived fields that have no spreadsheet column.
func (f Field) Header() string { return fieldMetas[f].header }

// Label returns the Korean display name used in insight text.
func (f Field) Label() string { return fieldMetas[f].label }

// Unit returns the counting unit appended to formatted values.
func (f Field) Unit() string { return fieldMetas[f].unit }

// Valid reports whether f names a known metric field.
func (f Field) Valid() bool {
	_, ok := fieldMetas[f]
	return ok
}

// FieldByHeader resolves a spreadsheet column header to its Field.
func FieldByHeader(header string) (Field, bool) {
	for f, m := range fieldMetas {
		if m.header != "" && m.header == header {
			return f, true
		}
	}
	return "", false
}
