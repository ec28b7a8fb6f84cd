package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	showapp "github.com/alexanderramin/showmanager/internal/app"
	"github.com/alexanderramin/showmanager/internal/cli/formatter"
	"github.com/alexanderramin/showmanager/internal/domain"
	"github.com/alexanderramin/showmanager/internal/report"
	"github.com/alexanderramin/showmanager/internal/sheet"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// allRooms is the filter value that matches every room.
const allRooms = "all"

// huhTheme returns a huh theme using the Gruvbox palette.
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("[x] ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("[ ] ")
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed).SetString(" *")

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(huhTheme()).WithShowHelp(false)
}

// ── field sets ───────────────────────────────────────────────────────────────

// audienceFields holds the three typed counts of one session.
type audienceFields struct {
	pcg, com, adv string
}

func (f audienceFields) parse() (showapp.Audience, error) {
	var a showapp.Audience
	var err error
	if a.PCG, err = domain.ParseCount(f.pcg); err != nil {
		return a, fmt.Errorf("PCG %w", err)
	}
	if a.Commercial, err = domain.ParseCount(f.com); err != nil {
		return a, fmt.Errorf("Comerciário %w", err)
	}
	if a.Adverse, err = domain.ParseCount(f.adv); err != nil {
		return a, fmt.Errorf("Adversos %w", err)
	}
	return a, nil
}

// registerFields backs the register wizard.
type registerFields struct {
	name, room, from, to, notes string
	days                        []time.Weekday
	quick                       audienceFields
	perDate                     bool
}

func (f *registerFields) request() (showapp.RegisterRequest, error) {
	aud, err := f.quick.parse()
	if err != nil {
		return showapp.RegisterRequest{}, err
	}
	return registerRequest(f.name, f.room, f.from, f.to, f.notes, f.days, aud), nil
}

// dates returns the session dates the wizard input expands to.
func (f *registerFields) dates() ([]time.Time, error) {
	from, err := domain.ParseDate(f.from)
	if err != nil {
		return nil, err
	}
	to := from
	if strings.TrimSpace(f.to) != "" {
		if to, err = domain.ParseDate(f.to); err != nil {
			return nil, err
		}
	}
	days := f.days
	if len(days) == 0 {
		days = []time.Weekday{time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday}
	}
	return domain.DatesOnWeekdays(from, to, days), nil
}

// perDateFields backs the per-session counts step of the register wizard.
type perDateFields struct {
	dates  []time.Time
	counts []audienceFields
}

func newPerDateFields(dates []time.Time, quick audienceFields) *perDateFields {
	f := &perDateFields{dates: dates, counts: make([]audienceFields, len(dates))}
	for i := range f.counts {
		f.counts[i] = quick
	}
	return f
}

func (f *perDateFields) overrides() (map[string]showapp.Audience, error) {
	out := make(map[string]showapp.Audience, len(f.dates))
	for i, d := range f.dates {
		a, err := f.counts[i].parse()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", domain.FormatDate(d), err)
		}
		out[domain.FormatDate(d)] = a
	}
	return out, nil
}

// editFields backs the edit wizard, prefilled from a stored session.
type editFields struct {
	name, date, room, notes string
	audience                audienceFields
}

func newEditFields(s *domain.Session) *editFields {
	return &editFields{
		name:  s.EventName,
		date:  s.DateString(),
		room:  string(s.Room),
		notes: s.Notes,
		audience: audienceFields{
			pcg: strconv.Itoa(s.AudiencePCG),
			com: strconv.Itoa(s.AudienceCommercial),
			adv: strconv.Itoa(s.AudienceAdverse),
		},
	}
}

// applyTo copies the edited fields onto s.
func (f *editFields) applyTo(s *domain.Session) error {
	date, err := domain.ParseDate(f.date)
	if err != nil {
		return err
	}
	room, err := domain.ParseRoom(f.room)
	if err != nil {
		return err
	}
	aud, err := f.audience.parse()
	if err != nil {
		return err
	}
	s.EventName = strings.TrimSpace(f.name)
	s.Date = date
	s.Room = room
	s.AudiencePCG, s.AudienceCommercial, s.AudienceAdverse = aud.PCG, aud.Commercial, aud.Adverse
	s.Notes = strings.TrimSpace(f.notes)
	return nil
}

// filterFields backs the history filter wizard.
type filterFields struct {
	name, room, year string
}

func newFilterFields(current showapp.SessionFilter) *filterFields {
	room := current.Room
	if room == "" {
		room = allRooms
	}
	return &filterFields{name: current.Name, room: room, year: current.Year}
}

func (f *filterFields) filter() showapp.SessionFilter {
	return showapp.SessionFilter{
		Name: strings.TrimSpace(f.name),
		Room: f.room,
		Year: strings.TrimSpace(f.year),
	}
}

// reportFields backs the chart parameters wizard.
type reportFields struct {
	kind         report.Kind
	year1, year2 string
}

func (f *reportFields) request() showapp.ReportRequest {
	return showapp.ReportRequest{
		Kind:  f.kind,
		Year1: strings.TrimSpace(f.year1),
		Year2: strings.TrimSpace(f.year2),
	}
}

// ── form builders ────────────────────────────────────────────────────────────

func roomOptions() []huh.Option[string] {
	opts := make([]huh.Option[string], len(domain.Rooms))
	for i, r := range domain.Rooms {
		opts[i] = huh.NewOption(string(r), string(r))
	}
	return opts
}

func weekdayOptions() []huh.Option[time.Weekday] {
	order := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}
	opts := make([]huh.Option[time.Weekday], len(order))
	for i, d := range order {
		opts[i] = huh.NewOption(domain.ShortWeekdayName(d), d)
	}
	return opts
}

func audienceInputs(f *audienceFields, suffix string) []huh.Field {
	return []huh.Field{
		huh.NewInput().Title("Público PCG" + suffix).Placeholder("0").Value(&f.pcg).Validate(validateCount),
		huh.NewInput().Title("Público Comerciário" + suffix).Placeholder("0").Value(&f.com).Validate(validateCount),
		huh.NewInput().Title("Público Adversos" + suffix).Placeholder("0").Value(&f.adv).Validate(validateCount),
	}
}

// wizardRegister asks for an event run: name, room, range, weekdays and the
// quick-fill counts applied to every session.
func wizardRegister(f *registerFields) *huh.Form {
	if f.room == "" {
		f.room = string(domain.RoomArena)
	}
	counts := append(audienceInputs(&f.quick, ""),
		huh.NewText().Title("Observações").Value(&f.notes).Lines(2),
		huh.NewConfirm().Title("Informar público de cada data?").
			Affirmative("Sim").Negative("Não").Value(&f.perDate),
	)
	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Nome do Evento").Value(&f.name).Validate(validateRequired("nome do evento")),
			huh.NewSelect[string]().Title("Sala").Options(roomOptions()...).Value(&f.room),
			huh.NewInput().Title("Data inicial").Placeholder("DD/MM/AAAA").Value(&f.from).Validate(validateDate),
			huh.NewInput().Title("Data final").Description("vazio = somente a data inicial").
				Placeholder("DD/MM/AAAA").Value(&f.to).Validate(validateOptionalDate),
			huh.NewMultiSelect[time.Weekday]().Title("Dias da semana").
				Description("nenhum = todos os dias").Options(weekdayOptions()...).Value(&f.days),
		),
		huh.NewGroup(counts...),
	)
}

// wizardPerDate asks for the counts of every generated session, one group
// per date, prefilled with the quick-fill values.
func wizardPerDate(f *perDateFields) *huh.Form {
	groups := make([]*huh.Group, len(f.dates))
	for i, d := range f.dates {
		suffix := fmt.Sprintf(" (%s %s)", domain.FormatDate(d), domain.ShortWeekdayName(d.Weekday()))
		groups[i] = huh.NewGroup(audienceInputs(&f.counts[i], suffix)...)
	}
	return newForm(groups...)
}

func wizardEdit(f *editFields) *huh.Form {
	counts := append(audienceInputs(&f.audience, ""),
		huh.NewText().Title("Observações").Value(&f.notes).Lines(2))
	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Nome do Evento").Value(&f.name).Validate(validateRequired("nome do evento")),
			huh.NewInput().Title("Data").Placeholder("DD/MM/AAAA").Value(&f.date).Validate(validateDate),
			huh.NewSelect[string]().Title("Sala").Options(roomOptions()...).Value(&f.room),
		),
		huh.NewGroup(counts...),
	)
}

func wizardFilter(f *filterFields) *huh.Form {
	rooms := append([]huh.Option[string]{huh.NewOption("Todas", allRooms)}, roomOptions()...)
	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Evento contém").Value(&f.name),
			huh.NewSelect[string]().Title("Sala").Options(rooms...).Value(&f.room),
			huh.NewInput().Title("Ano").Placeholder("AAAA").Value(&f.year).Validate(validateOptionalYear),
		),
	)
}

func wizardReport(f *reportFields) *huh.Form {
	if f.kind == "" {
		f.kind = report.KindMonthly
	}
	kinds := make([]huh.Option[report.Kind], len(report.Kinds))
	for i, k := range report.Kinds {
		kinds[i] = huh.NewOption(k.DisplayName(), k)
	}
	return newForm(
		huh.NewGroup(
			huh.NewSelect[report.Kind]().Title("Tipo de Relatório").Options(kinds...).Value(&f.kind),
			huh.NewInput().Title("Ano 1").Placeholder("AAAA").Value(&f.year1).Validate(validateYear),
			huh.NewInput().Title("Ano 2").Placeholder("AAAA").Value(&f.year2).Validate(validateYear),
		),
	)
}

func wizardImport(path *string) *huh.Form {
	if *path == "" {
		*path = sheet.DefaultFileName
	}
	return newForm(
		huh.NewGroup(
			huh.NewInput().Title("Arquivo Excel").Value(path).Validate(validateRequired("arquivo")),
		),
	)
}

// wizardDeleteEvent picks one of names and asks for confirmation. It
// returns nil when there is nothing to pick.
func wizardDeleteEvent(names []string, name *string, confirmed *bool) *huh.Form {
	if len(names) == 0 {
		return nil
	}
	opts := make([]huh.Option[string], len(names))
	for i, n := range names {
		opts[i] = huh.NewOption(n, n)
	}
	return newForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Evento").Options(opts...).Value(name),
			huh.NewConfirm().
				TitleFunc(func() string {
					return fmt.Sprintf("Remover TODAS as sessões de %q?", *name)
				}, name).
				Affirmative("Sim").
				Negative("Não").
				Value(confirmed),
		),
	)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return newForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Sim").
				Negative("Não").
				Value(result),
		),
	)
}

// ── validators ───────────────────────────────────────────────────────────────

func validateRequired(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s é obrigatório", name)
		}
		return nil
	}
}

func validateDate(s string) error {
	if _, err := domain.ParseDate(s); err != nil {
		return fmt.Errorf("use o formato DD/MM/AAAA")
	}
	return nil
}

func validateOptionalDate(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateDate(s)
}

func validateCount(s string) error {
	if _, err := domain.ParseCount(s); err != nil {
		return fmt.Errorf("informe um número inteiro não negativo")
	}
	return nil
}

func validateYear(s string) error {
	s = strings.TrimSpace(s)
	if len(s) != 4 {
		return fmt.Errorf("informe o ano com 4 dígitos")
	}
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("informe o ano com 4 dígitos")
	}
	return nil
}

func validateOptionalYear(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validateYear(s)
}
