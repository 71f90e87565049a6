// Wire mapping.
//
// The public JSON contract keeps the original Portuguese field names and is
// produced by the explicit mapping functions below, never by reflecting the
// storage models. This keeps the contract stable if column names or internal
// types ever change.
package handlers

import (
	"time"

	"github.com/mribeiro/go-vacina-backend/internal/domain"
	"github.com/mribeiro/go-vacina-backend/internal/services"
)

// VaccineResponse is the wire form of a catalog vaccine.
type VaccineResponse struct {
	ID        uint   `json:"id"`
	Nome      string `json:"nome"`
	Categoria string `json:"categoria"`
}

// PersonResponse is the wire form of a registered person.
type PersonResponse struct {
	ID                  uint   `json:"id"`
	Nome                string `json:"nome"`
	NumeroIdentificacao string `json:"numero_identificacao"`
}

// ImmunizationResponse is the wire form of a single dose record.
type ImmunizationResponse struct {
	ID            uint   `json:"id"`
	PessoaID      uint   `json:"pessoa_id"`
	VacinaID      uint   `json:"vacina_id"`
	DoseAplicada  string `json:"dose_aplicada"`
	DataAplicacao string `json:"data_aplicacao"`
}

// CardDoseResponse is one administered dose inside a card group.
type CardDoseResponse struct {
	ID            uint   `json:"id"`
	DoseAplicada  string `json:"dose_aplicada"`
	DataAplicacao string `json:"data_aplicacao"`
}

// CardVaccineResponse is one vaccine group on the card, doses in
// chronological order.
type CardVaccineResponse struct {
	VacinaID   uint               `json:"vacina_id"`
	NomeVacina string             `json:"nome_vacina"`
	Categoria  string             `json:"categoria"`
	Doses      []CardDoseResponse `json:"doses"`
}

// CardResponse is the full vaccination card: the person's summary plus one
// group per vaccine actually administered.
type CardResponse struct {
	ID                  uint                  `json:"id"`
	Nome                string                `json:"nome"`
	NumeroIdentificacao string                `json:"numero_identificacao"`
	VacinasRegistradas  []CardVaccineResponse `json:"vacinas_registradas"`
}

// TokenResponse carries the signed access token issued at login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
}

// formatAppliedAt renders a timestamp in the exact-second wire format.
func formatAppliedAt(t time.Time) string {
	return t.Format(domain.AppliedAtLayout)
}

func toVaccineResponse(v *domain.Vaccine) VaccineResponse {
	return VaccineResponse{ID: v.ID, Nome: v.Name, Categoria: v.Category}
}

func toVaccineList(vs []domain.Vaccine) []VaccineResponse {
	out := make([]VaccineResponse, 0, len(vs))
	for i := range vs {
		out = append(out, toVaccineResponse(&vs[i]))
	}
	return out
}

func toPersonResponse(p *domain.Person) PersonResponse {
	return PersonResponse{ID: p.ID, Nome: p.Name, NumeroIdentificacao: p.ExternalID}
}

func toPersonList(ps []domain.Person) []PersonResponse {
	out := make([]PersonResponse, 0, len(ps))
	for i := range ps {
		out = append(out, toPersonResponse(&ps[i]))
	}
	return out
}

func toImmunizationResponse(rec *domain.Immunization) ImmunizationResponse {
	return ImmunizationResponse{
		ID:            rec.ID,
		PessoaID:      rec.PersonID,
		VacinaID:      rec.VaccineID,
		DoseAplicada:  rec.DoseLabel,
		DataAplicacao: formatAppliedAt(rec.AppliedAt),
	}
}

func toCardResponse(card *services.Card) CardResponse {
	groups := make([]CardVaccineResponse, 0, len(card.Vaccines))
	for _, g := range card.Vaccines {
		doses := make([]CardDoseResponse, 0, len(g.Doses))
		for _, d := range g.Doses {
			doses = append(doses, CardDoseResponse{
				ID:            d.ID,
				DoseAplicada:  d.DoseLabel,
				DataAplicacao: formatAppliedAt(d.AppliedAt),
			})
		}
		groups = append(groups, CardVaccineResponse{
			VacinaID:   g.VaccineID,
			NomeVacina: g.VaccineName,
			Categoria:  g.Category,
			Doses:      doses,
		})
	}
	return CardResponse{
		ID:                  card.Person.ID,
		Nome:                card.Person.Name,
		NumeroIdentificacao: card.Person.ExternalID,
		VacinasRegistradas:  groups,
	}
}
