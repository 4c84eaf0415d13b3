package notifier

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// FormatMontant renders an amount the way the tenants read it,
// e.g. 5000000 -> "5 000 000 GNF".
func FormatMontant(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if fracPart != "" {
		out += "," + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out + " GNF"
}

// FormatDateFR renders a "2006-01-02" date as "30 avril 2025". The
// input is passed through unchanged when it does not parse.
func FormatDateFR(dateStr string) string {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return dateStr
	}
	return fmt.Sprintf("%d %s %d", t.Day(), frenchMonths[t.Month()-1], t.Year())
}

const emailFooter = `<p style="margin-top: 20px;">Cordialement,<br>L'équipe de gestion locative</p>`

func wrapEmail(title, body string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #2e7d32;">%s</h2>
%s%s
</div>`, title, body, emailFooter)
}

// LeaseCreatedEmail confirms a freshly signed lease to the tenant.
func LeaseCreatedEmail(toName, toEmail, numero, dateDebut string, dateFin *string, loyer, caution float64) Message {
	var fin string
	if dateFin != nil {
		fin = fmt.Sprintf("<p><strong>Date de fin :</strong> %s</p>\n", FormatDateFR(*dateFin))
	}
	body := fmt.Sprintf(`  <p>Bonjour %s,</p>
  <p>Nous vous confirmons la signature de votre contrat pour l'appartement <strong>%s</strong>.</p>
  <p><strong>Date de début :</strong> %s</p>
%s  <p><strong>Loyer mensuel :</strong> %s</p>
  <p><strong>Caution :</strong> %s</p>
  <p>Bienvenue ! Pour toute question, contactez-nous.</p>
`, toName, numero, FormatDateFR(dateDebut), fin, FormatMontant(loyer), FormatMontant(caution))

	return Message{
		ToName:    toName,
		ToEmail:   toEmail,
		Subject:   fmt.Sprintf("Nouveau contrat signé - Appartement %s", numero),
		PlainText: fmt.Sprintf("Votre contrat pour l'appartement %s a été signé.", numero),
		HTML:      wrapEmail("Nouveau contrat", body),
	}
}

// LeaseUpdatedEmail notifies the tenant of changed lease terms.
func LeaseUpdatedEmail(toName, toEmail, numero, dateDebut string, dateFin *string, loyer, caution float64, statut string) Message {
	var fin string
	if dateFin != nil {
		fin = fmt.Sprintf("<p><strong>Date de fin :</strong> %s</p>\n", FormatDateFR(*dateFin))
	}
	body := fmt.Sprintf(`  <p>Bonjour %s,</p>
  <p>Votre contrat pour l'appartement <strong>%s</strong> a été mis à jour :</p>
  <p><strong>Date de début :</strong> %s</p>
%s  <p><strong>Loyer mensuel :</strong> %s</p>
  <p><strong>Caution :</strong> %s</p>
  <p><strong>Statut :</strong> %s</p>
  <p>Pour toute question, contactez-nous.</p>
`, toName, numero, FormatDateFR(dateDebut), fin, FormatMontant(loyer), FormatMontant(caution), statut)

	return Message{
		ToName:    toName,
		ToEmail:   toEmail,
		Subject:   fmt.Sprintf("Mise à jour du contrat - Appartement %s", numero),
		PlainText: fmt.Sprintf("Votre contrat pour l'appartement %s a été mis à jour.", numero),
		HTML:      wrapEmail("Mise à jour de contrat", body),
	}
}

// LeaseTerminatedEmail summarizes the exit: effective date, deposit
// return if any, and any outstanding arrears.
func LeaseTerminatedEmail(toName, toEmail, numero, dateSortie string, montantRestitue *float64, totalImpayes float64) Message {
	restitution := "<p>Aucune restitution de caution n'a été enregistrée.</p>"
	if montantRestitue != nil {
		restitution = fmt.Sprintf("<p>Une restitution de caution de <strong>%s</strong> a été enregistrée.</p>",
			FormatMontant(*montantRestitue))
	}
	impayes := "<p>Aucun impayé n'est enregistré.</p>"
	if totalImpayes > 0 {
		impayes = fmt.Sprintf("<p><strong>Attention :</strong> un montant de <strong>%s</strong> d'impayés reste à régler. Veuillez nous contacter pour régulariser la situation.</p>",
			FormatMontant(totalImpayes))
	}
	body := fmt.Sprintf(`  <p>Bonjour %s,</p>
  <p>Nous vous confirmons que votre contrat pour l'appartement <strong>%s</strong> prend fin le <strong>%s</strong>.</p>
  %s
  %s
  <p>Nous vous remercions pour votre séjour et restons à votre disposition pour toute question.</p>
`, toName, numero, FormatDateFR(dateSortie), restitution, impayes)

	return Message{
		ToName:    toName,
		ToEmail:   toEmail,
		Subject:   fmt.Sprintf("Confirmation de fin de contrat - Appartement %s", numero),
		PlainText: fmt.Sprintf("Votre contrat pour l'appartement %s prend fin le %s.", numero, FormatDateFR(dateSortie)),
		HTML:      wrapEmail("Fin de contrat", body),
	}
}

// PaymentEmail is either a payment confirmation or an arrears notice
// depending on estPaye.
func PaymentEmail(toName, toEmail, numero string, montant float64, datePaiement string, estPaye bool) Message {
	subject := "Notification d'impayé"
	statut := "Impayé"
	closing := "<p>Veuillez régulariser votre situation au plus vite.</p>"
	if estPaye {
		subject = "Confirmation de paiement"
		statut = "Payé"
		closing = "<p>Merci pour votre règlement.</p>"
	}
	body := fmt.Sprintf(`  <p>Bonjour %s,</p>
  <p>Nous vous informons que pour l'appartement <strong>%s</strong> :</p>
  <p><strong>Montant :</strong> %s</p>
  <p><strong>Date :</strong> %s</p>
  <p><strong>Statut :</strong> %s</p>
  %s
  <p>Pour toute question, contactez-nous.</p>
`, toName, numero, FormatMontant(montant), FormatDateFR(datePaiement), statut, closing)

	return Message{
		ToName:    toName,
		ToEmail:   toEmail,
		Subject:   subject,
		PlainText: fmt.Sprintf("%s : %s pour l'appartement %s.", subject, FormatMontant(montant), numero),
		HTML:      wrapEmail(subject, body),
	}
}
