package notifications

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/arnakr/AeroPark-Service/internal/domain"
)

// templateData fields exposed to the mail templates
type templateData struct {
	Name        string
	Reference   string
	LotName     string
	DropOff     string
	PickUp      string
	TotalDays   int
	TotalPrice  int64
	PlateNumber string
}

type mailTemplate struct {
	subject string
	body    *template.Template
}

// Plain-text bodies; the mail service owns layout and branding.
var templates = map[string]map[Event]mailTemplate{
	domain.LocaleEN: {
		EventBookingReceived: {
			subject: "We received your parking booking {{REF}}",
			body: mustParse("received_en", `Hello {{.Name}},

We received your booking {{.Reference}} at {{.LotName}}.
Drop-off: {{.DropOff}}
Pick-up: {{.PickUp}}
Total: {{.TotalPrice}} ISK for {{.TotalDays}} day(s).

The booking is confirmed once the payment completes.
`),
		},
		EventBookingConfirmed: {
			subject: "Booking {{REF}} confirmed",
			body: mustParse("confirmed_en", `Hello {{.Name}},

Your booking {{.Reference}} at {{.LotName}} is confirmed.
Drop-off: {{.DropOff}}
Pick-up: {{.PickUp}}

See you at the lot.
`),
		},
		EventCheckedIn: {
			subject: "Vehicle {{PLATE}} checked in",
			body: mustParse("checkedin_en", `Hello {{.Name}},

Your vehicle {{.PlateNumber}} was checked in at {{.LotName}} under booking {{.Reference}}.
Safe travels.
`),
		},
		EventVehicleReady: {
			subject: "Vehicle {{PLATE}} is ready for pick-up",
			body: mustParse("ready_en", `Hello {{.Name}},

Your vehicle {{.PlateNumber}} is ready for pick-up at {{.LotName}} (booking {{.Reference}}).
`),
		},
		EventCheckedOut: {
			subject: "Thank you for parking with us",
			body: mustParse("checkedout_en", `Hello {{.Name}},

Booking {{.Reference}} is complete. We hope to see you again at {{.LotName}}.
`),
		},
		EventCancelled: {
			subject: "Booking {{REF}} cancelled",
			body: mustParse("cancelled_en", `Hello {{.Name}},

Your booking {{.Reference}} at {{.LotName}} has been cancelled.
`),
		},
		EventNoShow: {
			subject: "Booking {{REF}} marked as no-show",
			body: mustParse("noshow_en", `Hello {{.Name}},

Booking {{.Reference}} at {{.LotName}} was marked as a no-show.
Contact us if this is a mistake.
`),
		},
	},
	domain.LocaleIS: {
		EventBookingReceived: {
			subject: "Bókun {{REF}} móttekin",
			body: mustParse("received_is", `Halló {{.Name}},

Við höfum móttekið bókun {{.Reference}} hjá {{.LotName}}.
Skil: {{.DropOff}}
Sótt: {{.PickUp}}
Samtals: {{.TotalPrice}} kr. fyrir {{.TotalDays}} dag(a).

Bókunin er staðfest þegar greiðsla hefur borist.
`),
		},
		EventBookingConfirmed: {
			subject: "Bókun {{REF}} staðfest",
			body: mustParse("confirmed_is", `Halló {{.Name}},

Bókun {{.Reference}} hjá {{.LotName}} er staðfest.
Skil: {{.DropOff}}
Sótt: {{.PickUp}}
`),
		},
		EventCheckedIn: {
			subject: "Bíll {{PLATE}} innritaður",
			body: mustParse("checkedin_is", `Halló {{.Name}},

Bíllinn {{.PlateNumber}} var innritaður hjá {{.LotName}} (bókun {{.Reference}}).
Góða ferð.
`),
		},
		EventVehicleReady: {
			subject: "Bíll {{PLATE}} tilbúinn til afhendingar",
			body: mustParse("ready_is", `Halló {{.Name}},

Bíllinn {{.PlateNumber}} er tilbúinn til afhendingar hjá {{.LotName}} (bókun {{.Reference}}).
`),
		},
		EventCheckedOut: {
			subject: "Takk fyrir viðskiptin",
			body: mustParse("checkedout_is", `Halló {{.Name}},

Bókun {{.Reference}} er lokið. Við vonumst til að sjá þig aftur hjá {{.LotName}}.
`),
		},
		EventCancelled: {
			subject: "Bókun {{REF}} afturkölluð",
			body: mustParse("cancelled_is", `Halló {{.Name}},

Bókun {{.Reference}} hjá {{.LotName}} hefur verið afturkölluð.
`),
		},
		EventNoShow: {
			subject: "Bókun {{REF}} merkt sem ekki mætt",
			body: mustParse("noshow_is", `Halló {{.Name}},

Bókun {{.Reference}} hjá {{.LotName}} var merkt sem ekki mætt.
Hafðu samband ef þetta er rangt.
`),
		},
	},
}

func mustParse(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

// render produces the subject and body for one event in the given locale,
// falling back to English for unknown locales.
func render(event Event, locale string, data templateData) (subject, body string, err error) {
	byEvent, ok := templates[locale]
	if !ok {
		byEvent = templates[domain.LocaleEN]
	}

	tmpl, ok := byEvent[event]
	if !ok {
		return "", "", fmt.Errorf("%w: no template for event %q", ErrUnknownEvent, event)
	}

	subject = strings.NewReplacer(
		"{{REF}}", data.Reference,
		"{{PLATE}}", data.PlateNumber,
	).Replace(tmpl.subject)

	var sb strings.Builder
	if err := tmpl.body.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render body for event %q: %w", event, err)
	}

	return subject, sb.String(), nil
}
