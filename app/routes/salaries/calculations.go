package salaries

import (
	"log"
	"strings"

	"github.com/pr-poehali-dev/model-agency-website-auth/app/models"
)

// TokenRate is the fixed conversion from platform tokens to currency units.
const TokenRate = 0.05

// Shares of the gross check. Operator and producer split a 30% pool at the
// division point configured on the assignment; a producer without a credited
// operator gets a flat 10% instead.
const (
	modelSharePercent        = 30.0
	sharedPoolPercent        = 30.0
	producerSoloSharePercent = 10.0
	defaultSoloPercent       = 50.0
)

// PayrollInput bundles the read-only data sets one salary run consumes.
type PayrollInput struct {
	Users               []*models.User
	Assignments         []*models.OperatorAssignment
	ProducerAssignments []*models.ProducerAssignment
	Finances            []*models.FinanceRecord
}

// GrossCheck converts one day's raw record into a single currency value.
// Token platforms prefer the recorded token income; older rows stored only
// a raw count (sometimes online minutes), accepted at the same rate.
func GrossCheck(r *models.FinanceRecord) float64 {
	gross := tokenRevenue(r.CbIncome, float64(r.CbTokens)) +
		tokenRevenue(r.SpIncome, float64(r.SpTokens)) +
		tokenRevenue(r.SodaIncome, float64(r.SodaTokens))
	return gross + r.Cam4Income + r.Transfers
}

func tokenRevenue(income, tokens float64) float64 {
	if income > 0 {
		return income * TokenRate
	}
	return tokens * TokenRate
}

// resolver holds the lookup maps built once per salary run. Keying
// assignments by model id keeps the run independent of row order; the write
// path enforces the uniqueness these maps assume.
type resolver struct {
	usersByID         map[int]*models.User
	usersByName       map[string]*models.User
	usersByEmail      map[string]*models.User
	assignmentByModel map[int]*models.OperatorAssignment
	producerByModel   map[string]string
}

func newResolver(in PayrollInput) *resolver {
	rv := &resolver{
		usersByID:         make(map[int]*models.User, len(in.Users)),
		usersByName:       make(map[string]*models.User, len(in.Users)),
		usersByEmail:      make(map[string]*models.User, len(in.Users)),
		assignmentByModel: make(map[int]*models.OperatorAssignment, len(in.Assignments)),
		producerByModel:   make(map[string]string),
	}

	for _, u := range in.Users {
		rv.usersByID[u.ID] = u
		rv.usersByEmail[u.Email] = u
		name := strings.TrimSpace(u.FullName)
		if _, exists := rv.usersByName[name]; exists {
			log.Printf("Duplicate full name %q in user directory, keeping first match", name)
			continue
		}
		rv.usersByName[name] = u
	}

	for _, a := range in.Assignments {
		if _, exists := rv.assignmentByModel[a.ModelID]; exists {
			log.Printf("Duplicate operator assignment for model %d, keeping first match", a.ModelID)
			continue
		}
		rv.assignmentByModel[a.ModelID] = a
	}

	for _, pa := range in.ProducerAssignments {
		if pa.AssignmentType != models.ProducerAssignsModel {
			continue
		}
		if _, exists := rv.producerByModel[pa.ModelEmail]; exists {
			log.Printf("Model %s claimed by multiple producers, keeping first match", pa.ModelEmail)
			continue
		}
		rv.producerByModel[pa.ModelEmail] = pa.ProducerEmail
	}

	return rv
}

// shiftContext describes who gets paid for one finance record.
type shiftContext struct {
	Assignment    *models.OperatorAssignment
	Model         *models.User // payee profile, nil when the assignment is stale
	Operator      *models.User // credited shift worker, nil when nobody is credited
	ProducerEmail string       // owner of the model, empty when unowned
}

// resolve returns nil when the model has no operator assignment: no
// assignment, no pay. The day's worker is found by the operator id stored at
// entry time, falling back to exact full-name match for legacy rows.
func (rv *resolver) resolve(rec *models.FinanceRecord) *shiftContext {
	asg := rv.assignmentByModel[rec.ModelID]
	if asg == nil {
		return nil
	}

	ctx := &shiftContext{
		Assignment:    asg,
		Model:         rv.usersByEmail[asg.ModelEmail],
		ProducerEmail: rv.producerByModel[asg.ModelEmail],
	}

	var worker *models.User
	if rec.OperatorID != nil {
		worker = rv.usersByID[*rec.OperatorID]
	}
	if worker == nil && rec.OperatorName != "" {
		worker = rv.usersByName[strings.TrimSpace(rec.OperatorName)]
	}

	if worker != nil {
		switch worker.Role {
		case models.RoleOperator, models.RoleProducer:
			ctx.Operator = worker
		default:
			log.Printf("Shift worker %s has role %s, no operator payout for model %d on %s",
				worker.Email, worker.Role, rec.ModelID, rec.DateString())
		}
	}

	return ctx
}

// ledgerBuilder folds payout lines into per-payee ledgers.
type ledgerBuilder map[string]*models.Ledger

func (b ledgerBuilder) add(email string, entry models.LedgerEntry) {
	ledger, ok := b[email]
	if !ok {
		ledger = &models.Ledger{Email: email}
		b[email] = ledger
	}
	ledger.Total += entry.Amount
	ledger.Details = append(ledger.Details, entry)
}

// CalculateSalaries runs the payroll aggregation over one period's records
// and returns the three payout ledgers. Records with zero gross or without
// an operator assignment are skipped, never paid and never an error.
func CalculateSalaries(in PayrollInput) *models.SalaryReport {
	rv := newResolver(in)

	operators := ledgerBuilder{}
	modelLedgers := ledgerBuilder{}
	producers := ledgerBuilder{}

	skipped := 0
	for _, rec := range in.Finances {
		gross := GrossCheck(rec)
		if gross <= 0 {
			continue
		}

		ctx := rv.resolve(rec)
		if ctx == nil {
			skipped++
			continue
		}

		asg := ctx.Assignment
		date := rec.DateString()

		// Model share: standard 30%, or the solo maker's own percentage.
		modelPct := modelSharePercent
		if ctx.Model != nil && ctx.Model.Role == models.RoleSoloMaker {
			modelPct = float64(ctx.Model.SoloPercentage)
			if modelPct <= 0 {
				modelPct = defaultSoloPercent
			}
		}
		modelLedgers.add(asg.ModelEmail, models.LedgerEntry{
			Date:    date,
			ModelID: rec.ModelID,
			Amount:  gross * modelPct / 100,
			Check:   gross,
		})

		credited := ctx.Operator != nil
		producerShare := gross * producerSoloSharePercent / 100
		if credited {
			producerShare = gross * (sharedPoolPercent - asg.OperatorPercentage) / 100
		}

		if !credited {
			if ctx.ProducerEmail != "" {
				producers.add(ctx.ProducerEmail, models.LedgerEntry{
					Date:    date,
					ModelID: rec.ModelID,
					Amount:  producerShare,
					Check:   gross,
				})
			}
			continue
		}

		operatorShare := gross * asg.OperatorPercentage / 100

		if ctx.Operator.Role == models.RoleProducer {
			if ctx.Operator.Email == ctx.ProducerEmail {
				// The owning producer worked the shift: one combined payout,
				// plus a zero line keeping the producer cut visible in audits.
				producers.add(ctx.Operator.Email, models.LedgerEntry{
					Date:    date,
					ModelID: rec.ModelID,
					Amount:  operatorShare + producerShare,
					Check:   gross,
					Note:    models.NoteAsOperator,
				})
				producers.add(ctx.Operator.Email, models.LedgerEntry{
					Date:    date,
					ModelID: rec.ModelID,
					Amount:  0,
					Check:   gross,
					Note:    models.NoteAlreadyPaidAsOperator,
				})
				continue
			}

			// A producer covered someone else's shift: operator cut to them,
			// producer cut to the owner as usual.
			producers.add(ctx.Operator.Email, models.LedgerEntry{
				Date:    date,
				ModelID: rec.ModelID,
				Amount:  operatorShare,
				Check:   gross,
				Note:    models.NoteAsOperator,
			})
		} else {
			operators.add(ctx.Operator.Email, models.LedgerEntry{
				Date:    date,
				ModelID: rec.ModelID,
				Amount:  operatorShare,
				Check:   gross,
			})
		}

		if ctx.ProducerEmail != "" {
			producers.add(ctx.ProducerEmail, models.LedgerEntry{
				Date:    date,
				ModelID: rec.ModelID,
				Amount:  producerShare,
				Check:   gross,
			})
		}
	}

	if skipped > 0 {
		log.Printf("Salary run skipped %d records without an operator assignment", skipped)
	}

	report := models.NewSalaryReport()
	report.Operators = operators
	report.Models = modelLedgers
	report.Producers = producers
	return report
}
