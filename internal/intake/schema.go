package intake

import (
	"slices"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldKind selects the widget that edits a field.
type FieldKind int

const (
	KindText      FieldKind = iota // single-line input
	KindMultiline                  // free text over several lines
	KindChoice                     // one value out of Options
	KindYesNo                      // Yes or No
	KindChecklist                  // any subset of Options
)

// Option is one selectable value of a choice or checklist field.
type Option struct {
	Value string
	Label string
}

// Field describes one entry of the form and how to reach its value inside
// FormState.
type Field struct {
	Name        string
	Label       string
	Placeholder string
	Kind        FieldKind
	Required    bool
	Options     []Option

	text func(*FormState) *string
	list func(*FormState) *[]string
}

// IsList reports whether the field holds several values.
func (f Field) IsList() bool {
	return f.list != nil
}

// Text returns the current value of a single-valued field.
func (f Field) Text(s FormState) string {
	if f.text == nil {
		return ""
	}
	return *f.text(&s)
}

// SetText stores value on a single-valued field. List fields ignore it.
func (f Field) SetText(s *FormState, value string) {
	if f.text == nil || s == nil {
		return
	}
	*f.text(s) = value
}

// List returns the selected values of a checklist field.
func (f Field) List(s FormState) []string {
	if f.list == nil {
		return nil
	}
	return *f.list(&s)
}

// Has reports whether value is selected on a checklist field.
func (f Field) Has(s FormState, value string) bool {
	return slices.Contains(f.List(s), value)
}

// Toggle adds value to a checklist field, or removes it when already
// selected. Selection order follows the order of Options.
func (f Field) Toggle(s *FormState, value string) {
	if f.list == nil || s == nil {
		return
	}
	current := *f.list(s)
	if slices.Contains(current, value) {
		*f.list(s) = slices.DeleteFunc(slices.Clone(current), func(v string) bool { return v == value })
		return
	}
	var next []string
	for _, opt := range f.Options {
		if opt.Value == value || slices.Contains(current, opt.Value) {
			next = append(next, opt.Value)
		}
	}
	// Values outside Options (answers files) keep their place at the end.
	for _, v := range current {
		if !slices.Contains(next, v) {
			next = append(next, v)
		}
	}
	*f.list(s) = next
}

// OptionLabel returns the label for value, or value itself.
func (f Field) OptionLabel(value string) string {
	for _, opt := range f.Options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}

// Only used while building the option tables at init; a Caser is not safe
// for concurrent use.
var lowerTR = cases.Lower(language.Turkish)

// labeled builds options whose values are the Turkish-lowercased labels.
// Turkish rules give "iletişim" for "İletişim", not the "i̇letişim" a
// locale-blind lowercase produces; the payload uses the Turkish spelling.
func labeled(labels ...string) []Option {
	out := make([]Option, len(labels))
	for i, label := range labels {
		out[i] = Option{Value: lowerTR.String(label), Label: label}
	}
	return out
}

var yesNoOptions = []Option{
	{Value: Yes, Label: "Evet"},
	{Value: No, Label: "Hayır"},
}

var (
	ProjectTypes = []Option{
		{Value: "new", Label: "Yeni Web Sitesi"},
		{Value: "update", Label: "Mevcut Site Güncellemesi"},
		{Value: "ecommerce", Label: "E-ticaret Sitesi"},
		{Value: "corporate", Label: "Kurumsal Site"},
		{Value: "portfolio", Label: "Kişisel Portfolyo"},
	}
	BudgetRanges = []Option{
		{Value: "5000-10000", Label: "5.000₺ - 10.000₺"},
		{Value: "10000-20000", Label: "10.000₺ - 20.000₺"},
		{Value: "20000-50000", Label: "20.000₺ - 50.000₺"},
		{Value: "50000+", Label: "50.000₺ ve üzeri"},
	}
	CompletionTimes = []Option{
		{Value: "1week", Label: "1 Hafta"},
		{Value: "2weeks", Label: "2 Hafta"},
		{Value: "3weeks", Label: "3 Hafta"},
		{Value: "1month", Label: "1 Ay"},
		{Value: "2months", Label: "2 Ay"},
	}
	DesignStyles = labeled("Minimal", "Modern", "Kurumsal", "Renkli", "Eğlenceli")
	PageOptions  = labeled("Anasayfa", "Hakkımızda", "İletişim", "Blog", "Ürünler", "Hizmetler", "Portfolyo", "SSS")
)

func textField(name, label string, required bool, ref func(*FormState) *string) Field {
	return Field{Name: name, Label: label, Kind: KindText, Required: required, text: ref}
}

func noteField(name, label, placeholder string, ref func(*FormState) *string) Field {
	return Field{Name: name, Label: label, Placeholder: placeholder, Kind: KindMultiline, text: ref}
}

func choiceField(name, label string, required bool, options []Option, ref func(*FormState) *string) Field {
	return Field{Name: name, Label: label, Kind: KindChoice, Required: required, Options: options, text: ref}
}

func yesNoField(name, label string, ref func(*FormState) *string) Field {
	return Field{Name: name, Label: label, Kind: KindYesNo, Required: true, Options: yesNoOptions, text: ref}
}

func checklistField(name, label string, options []Option, ref func(*FormState) *[]string) Field {
	return Field{Name: name, Label: label, Kind: KindChecklist, Required: true, Options: options, list: ref}
}

var schema = map[Step][]Field{
	StepBasics: {
		textField("fullName", "Ad Soyad", true, func(s *FormState) *string { return &s.FullName }),
		textField("email", "E-posta Adresi", true, func(s *FormState) *string { return &s.Email }),
		textField("phone", "Telefon Numarası", false, func(s *FormState) *string { return &s.Phone }),
		textField("companyName", "Şirket Adı", false, func(s *FormState) *string { return &s.CompanyName }),
		withPlaceholder(textField("website", "Web Sitesi (Varsa)", false, func(s *FormState) *string { return &s.Website }), "https://"),
	},
	StepProject: {
		choiceField("projectType", "Proje Türü", true, ProjectTypes, func(s *FormState) *string { return &s.ProjectType }),
		noteField("projectPurpose", "Projenin Amacı", "", func(s *FormState) *string { return &s.ProjectPurpose }),
		noteField("targetAudience", "Hedef Kitle", "Kimler bu siteyi ziyaret edecek?", func(s *FormState) *string { return &s.TargetAudience }),
		choiceField("budgetRange", "Bütçe Aralığı", false, BudgetRanges, func(s *FormState) *string { return &s.BudgetRange }),
		choiceField("completionTime", "Projenin Tamamlanma Süresi", true, CompletionTimes, func(s *FormState) *string { return &s.CompletionTime }),
	},
	StepDesign: {
		noteField("websiteExamples", "Beğendiğiniz Web Siteleri (Varsa Örnekler)", "Örnek site linklerini buraya ekleyebilirsiniz", func(s *FormState) *string { return &s.WebsiteExamples }),
		checklistField("designPreferences", "Tasarım Tercihleri", DesignStyles, func(s *FormState) *[]string { return &s.DesignPreferences }),
		withPlaceholder(textField("colorPreferences", "Renk ve Stil Tercihleri", false, func(s *FormState) *string { return &s.ColorPreferences }), "Marka renkleriniz varsa belirtiniz"),
		yesNoField("hasLogo", "Logo ve Kurumsal Kimlik Dosyaları Var mı?", func(s *FormState) *string { return &s.HasLogo }),
		checklistField("requiredPages", "Web Sitesinde Hangi Sayfalar Olmalı?", PageOptions, func(s *FormState) *[]string { return &s.RequiredPages }),
		yesNoField("contentReady", "Metin ve Görseller Hazır mı?", func(s *FormState) *string { return &s.ContentReady }),
	},
	StepTechnical: {
		yesNoField("needsAdmin", "Admin Paneli olacak mı?", func(s *FormState) *string { return &s.NeedsAdmin }),
		yesNoField("needsAuth", "Üye Girişi olacak mı?", func(s *FormState) *string { return &s.NeedsAuth }),
		yesNoField("needsPayment", "Sepet ya da ödeme entegrasyonu olacak mı?", func(s *FormState) *string { return &s.NeedsPayment }),
		yesNoField("needsContactForm", "Teklif/Randevu formu olacak mı?", func(s *FormState) *string { return &s.NeedsContactForm }),
		yesNoField("needsMultiLang", "Dil seçeneği olacak mı?", func(s *FormState) *string { return &s.NeedsMultiLang }),
	},
	StepExtras: {
		yesNoField("previousExperience", "Daha önce bir web sitesi projesi yaptırdınız mı?", func(s *FormState) *string { return &s.PreviousExperience }),
		noteField("additionalNotes", "Eklemek İstedikleriniz", "Projeniz hakkında eklemek istediğiniz diğer detayları buraya yazabilirsiniz", func(s *FormState) *string { return &s.AdditionalNotes }),
	},
}

func withPlaceholder(f Field, placeholder string) Field {
	f.Placeholder = placeholder
	return f
}

// Fields returns the fields shown on step, in display order.
func Fields(step Step) []Field {
	return slices.Clone(schema[step])
}

// AllFields returns every field of the form in step order.
func AllFields() []Field {
	var out []Field
	for _, step := range Steps() {
		out = append(out, schema[step]...)
	}
	return out
}

// FieldByName looks a field up by its payload key.
func FieldByName(name string) (Field, bool) {
	for _, f := range AllFields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
