package postmark

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Kas-Kady/bbq/internal/helpers"
	"github.com/Kas-Kady/bbq/internal/models"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`<p>Hallo {{.Name}},</p>
<p>
  Jij hebt je mogelijke datums opgegeven voor {{.Title}}.<br/>
  De BBQ is gepland op <strong>{{.Date}}</strong>.
</p>
{{if .ChoseDate}}<p>
  Je hebt aangegeven dat je kan op deze datum, we zien je dus graag tegen die tijd verschijnen!
</p>
{{if .Brings}}<p>
  Je neemt het volgende mee: <em>{{.Brings}}</em>
</p>
{{end}}{{if .Upgrades}}<p>Je hebt de volgende upgrades gekozen:</p>
<ul>
{{range .Upgrades}}  <li>{{.Description}} ({{.Amount}})</li>
{{end}}</ul>
{{end}}{{else}}<p>
  Je hebt aangegeven dat je niet kan op deze datum. Helaas, maar dan zien we je graag een andere keer!
</p>
{{end}}`))

type upgradeLine struct {
	Description string
	Amount      string
}

type confirmationData struct {
	Name      string
	Title     string
	Date      string
	ChoseDate bool
	Brings    string
	Upgrades  []upgradeLine
}

// BuildConfirmations produces one confirmation mail per attendee for a BBQ
// whose date has been committed. The wording depends on whether the
// attendee had the committed date among their available dates; the brings
// note and the chosen upgrades are listed when present.
func BuildConfirmations(bbq *models.BBQ, attendees []models.Attendee, from Address) []Message {
	messages := make([]Message, 0, len(attendees))
	for _, attendee := range attendees {
		messages = append(messages, buildConfirmation(bbq, attendee, from))
	}
	return messages
}

func buildConfirmation(bbq *models.BBQ, attendee models.Attendee, from Address) Message {
	data := confirmationData{
		Name:  attendee.User.Name,
		Title: bbq.Title,
	}

	if bbq.Date != nil {
		data.Date = helpers.FormatDateToLocale(*bbq.Date)
		data.ChoseDate = attendee.CanAttendOn(*bbq.Date)
	}
	if attendee.Brings != nil {
		data.Brings = *attendee.Brings
	}
	for _, upgrade := range attendee.ChosenUpgrades {
		data.Upgrades = append(data.Upgrades, upgradeLine{
			Description: upgrade.Description,
			Amount:      helpers.FormatAmountToLocale(upgrade.Amount),
		})
	}

	var body strings.Builder
	if err := confirmationTmpl.Execute(&body, data); err != nil {
		// The template is static and the data is plain values; execution
		// cannot fail at runtime.
		panic(err)
	}

	return Message{
		To:      Address{Name: attendee.User.Name, Email: attendee.User.Email},
		From:    from,
		Subject: fmt.Sprintf("Bevestiging %s", bbq.Title),
		HTML:    body.String(),
	}
}
