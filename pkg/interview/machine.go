package interview

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aretw0/fleetintake/internal/logging"
	"github.com/aretw0/fleetintake/pkg/domain"
	"github.com/aretw0/fleetintake/pkg/lexicon"
	"github.com/aretw0/fleetintake/pkg/matcher"
	"github.com/aretw0/fleetintake/pkg/ports"
)

// Machine drives a single interview. It owns the record being collected and
// talks to the user only through its Conversation.
type Machine struct {
	conv   ports.Conversation
	brands *matcher.Matcher
	record *domain.FleetRecord
	logger *slog.Logger
	hooks  Hooks

	state  State
	detail *modelInterview
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transitions and rejected answers.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithHooks registers observability callbacks.
func WithHooks(hooks Hooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithRecord makes the Machine fill r instead of a fresh record.
func WithRecord(r *domain.FleetRecord) Option {
	return func(m *Machine) {
		if r != nil {
			m.record = r
		}
	}
}

// New creates a Machine positioned at the first question.
func New(conv ports.Conversation, brands *matcher.Matcher, opts ...Option) *Machine {
	m := &Machine{
		conv:   conv,
		brands: brands,
		record: domain.NewFleetRecord(),
		logger: logging.NewNop(),
		state:  State{Kind: AskName},
	}
	for _, opt := range opts {
		opt(m)
	}
	// Model names are distinct once normalized.
	m.record.UseModelKey(lexicon.Normalize)
	return m
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Record returns the record being filled. It is frozen once the state is Done.
func (m *Machine) Record() *domain.FleetRecord {
	return m.record
}

// NeedsInput reports whether the current state waits for an answer.
func (m *Machine) NeedsInput() bool {
	return m.state.Kind != Done && !m.automatic()
}

// automatic reports whether the current state resolves without asking.
func (m *Machine) automatic() bool {
	s := m.state
	switch s.Kind {
	case StartTrucks:
		return true
	case AskBrandCount:
		return len(m.record.Brands) == 1
	case AskSameModel:
		n := m.record.BrandCounts[s.Brand]
		return n != nil && *n == 1
	}
	return false
}

// Prompt returns the question for the current state, or "" when the state
// does not ask anything.
func (m *Machine) Prompt() string {
	if !m.NeedsInput() {
		return ""
	}
	r := m.record
	s := m.state
	switch s.Kind {
	case AskName:
		return promptName
	case AskCompany:
		return promptCompany(r.Name)
	case AskOwnsTrucks:
		return promptOwnsTrucks
	case AskTotalCount:
		return promptTotalCount
	case AskBrands:
		if r.TotalTrucks > 1 {
			return promptBrandsMany
		}
		return promptBrandsOne
	case AskBrandCount:
		return promptBrandCount(r.Brands[s.Brand])
	case AskSameModel:
		return promptSameModel(r.Brands[s.Brand])
	case AskModelName:
		if m.sameModel(s.Brand) {
			return promptSingleModel(r.Brands[s.Brand])
		}
		return promptNthModel(len(r.Models[s.Brand])+1, r.Brands[s.Brand])
	case AskEngineSize, AskAxleCount, AskWeight, AskMaxLoad:
		return m.detail.prompt()
	case AskGroupSize:
		return promptGroupSize(r.Brands[s.Brand], s.Model)
	}
	return ""
}

// Advance resolves states that need no answer until the Machine either waits
// for input or is Done.
func (m *Machine) Advance(ctx context.Context) error {
	for m.state.Kind != Done && m.automatic() {
		s := m.state
		r := m.record
		switch s.Kind {
		case StartTrucks:
			if err := m.tell(ctx, msgStartTrucks); err != nil {
				return err
			}
			if err := r.StartOver(); err != nil {
				return err
			}
			m.detail = nil
			if err := m.enterBrand(ctx, 0); err != nil {
				return err
			}

		case AskBrandCount:
			total := r.TotalTrucks
			if total > 1 {
				if err := m.tell(ctx, msgAllOneBrand(total, r.Brands[s.Brand])); err != nil {
					return err
				}
			}
			if err := r.SetBrandCount(s.Brand, &total); err != nil {
				return err
			}
			m.enter(ctx, brandState(AskSameModel, s.Brand))

		case AskSameModel:
			if err := r.SetSameModel(s.Brand, true); err != nil {
				return err
			}
			m.enter(ctx, brandState(AskModelName, s.Brand))
		}
	}
	return nil
}

// Step applies one answer to the current state and advances through any
// states that follow without input. A rejected answer leaves the Machine in
// the same state, or a variant of it, and returns an error matching one of
// the domain sentinels; Rejected reports true for such errors. Any other
// error is fatal for the interview.
func (m *Machine) Step(ctx context.Context, answer string) (State, error) {
	if err := m.Advance(ctx); err != nil {
		return m.state, err
	}
	if m.state.Kind == Done {
		return m.state, domain.ErrRecordFrozen
	}

	err := m.apply(ctx, answer)

	var rj *rejection
	if errors.As(err, &rj) {
		for _, msg := range rj.msgs {
			if terr := m.tell(ctx, msg); terr != nil {
				return m.state, terr
			}
		}
		m.logger.Info("answer rejected", "state", m.state.String(), "error", rj.err)
		if m.hooks.OnReprompt != nil {
			m.hooks.OnReprompt(ctx, &StateEvent{EventBase: newBase(EventReprompt), State: m.state, Err: rj.err})
		}
		return m.state, err
	}
	if err != nil {
		return m.state, err
	}
	return m.state, m.Advance(ctx)
}

func (m *Machine) apply(ctx context.Context, answer string) error {
	s := m.state
	if s.Kind.BrandScoped() {
		handled, err := m.correction(ctx, answer)
		if handled || err != nil {
			return err
		}
	}

	switch s.Kind {
	case AskName:
		name, err := lexicon.ParseNonEmpty(answer)
		if err != nil {
			return reject(err, msgBlankName)
		}
		if err := m.record.SetName(name); err != nil {
			return err
		}
		m.enter(ctx, State{Kind: AskCompany})
	case AskCompany:
		company, err := lexicon.ParseNonEmpty(answer)
		if err != nil {
			return reject(err, msgBlankCompany)
		}
		if err := m.record.SetCompany(company); err != nil {
			return err
		}
		m.enter(ctx, State{Kind: AskOwnsTrucks})
	case AskOwnsTrucks:
		return m.ownsTrucks(ctx, answer)
	case AskTotalCount:
		return m.totalCount(ctx, answer)
	case AskBrands:
		return m.chooseBrands(ctx, answer)
	case AskBrandCount:
		return m.brandCount(ctx, s.Brand, answer)
	case AskSameModel:
		return m.sameModelAnswer(ctx, s.Brand, answer)
	case AskModelName:
		return m.modelName(ctx, s.Brand, answer)
	case AskEngineSize, AskAxleCount, AskWeight, AskMaxLoad:
		return m.modelDetail(ctx, s.Brand, answer)
	case AskGroupSize:
		return m.groupSize(ctx, s.Brand, answer)
	default:
		return fmt.Errorf("interview: state %s does not take answers", s)
	}
	return nil
}

func (m *Machine) ownsTrucks(ctx context.Context, answer string) error {
	switch {
	case lexicon.IsYes(answer):
		m.enter(ctx, State{Kind: AskTotalCount})
		return nil
	case lexicon.IsNo(answer):
		if err := m.record.SetTotalTrucks(0); err != nil {
			return err
		}
		return m.finish(ctx, msgNoTrucks)
	}
	return reject(fmt.Errorf("%w: %q", domain.ErrUnrecognizedAnswer, answer), msgNotUnderstood)
}

func (m *Machine) totalCount(ctx context.Context, answer string) error {
	n, err := lexicon.ParseInt(answer)
	if err != nil {
		return reject(err, msgNotANumber)
	}
	if n < 0 {
		return reject(outOfRange("truck count", n), msgNegativeTrucks)
	}
	if err := m.record.SetTotalTrucks(n); err != nil {
		return err
	}
	if n == 0 {
		return m.finish(ctx, msgNoTrucks)
	}
	m.enter(ctx, State{Kind: AskBrands})
	return nil
}

func (m *Machine) chooseBrands(ctx context.Context, answer string) error {
	found := m.brands.Find(answer)
	if len(found) == 0 {
		return reject(fmt.Errorf("%w: %q", domain.ErrNoBrandRecognized, answer), msgNoBrand)
	}
	if len(found) > m.record.TotalTrucks {
		m.enter(ctx, State{Kind: AskTotalCount})
		err := fmt.Errorf("%w: %d brands for %d trucks", domain.ErrTooManyBrandsForTruckCount, len(found), m.record.TotalTrucks)
		return reject(err, msgTooManyBrands)
	}
	if err := m.tell(ctx, msgBrandsUnderstood(found)); err != nil {
		return err
	}
	if err := m.record.SetBrands(found); err != nil {
		return err
	}
	m.enter(ctx, State{Kind: StartTrucks})
	return nil
}

func (m *Machine) brandCount(ctx context.Context, i int, answer string) error {
	n, err := lexicon.ParseInt(answer)
	if err != nil {
		return reject(err, msgNotANumber)
	}
	if err := m.record.SetBrandCount(i, &n); err != nil {
		return err
	}
	if err := domain.CheckConsistency(m.record); err != nil {
		if clearErr := m.record.SetBrandCount(i, nil); clearErr != nil {
			return clearErr
		}
		return reject(err, append(reasons(err), msgBrandCountOff(m.record.Brands[i]))...)
	}
	m.enter(ctx, brandState(AskSameModel, i))
	return nil
}

func (m *Machine) sameModelAnswer(ctx context.Context, i int, answer string) error {
	var same bool
	switch {
	case lexicon.IsYes(answer):
		same = true
	case lexicon.IsNo(answer):
		same = false
	default:
		return reject(fmt.Errorf("%w: %q", domain.ErrUnrecognizedAnswer, answer), msgNotUnderstood)
	}
	if err := m.record.SetSameModel(i, same); err != nil {
		return err
	}
	m.enter(ctx, brandState(AskModelName, i))
	return nil
}

func (m *Machine) modelName(ctx context.Context, i int, answer string) error {
	r := m.record
	brand := r.Brands[i]
	if !m.sameModel(i) && lexicon.IsNo(answer) {
		return m.noMoreModels(ctx, i)
	}

	name, err := lexicon.ParseNonEmpty(answer)
	if err != nil {
		return reject(err, msgBlankModel)
	}
	if err := r.AddModel(i, name); err != nil {
		if errors.Is(err, domain.ErrDuplicateModelName) {
			return reject(err, msgDuplicateModel(brand, name))
		}
		return err
	}
	m.detail = newModelInterview(brand, i, name)
	m.enter(ctx, modelState(AskEngineSize, i, name))
	return nil
}

// noMoreModels accepts the end of the model list only when the brand's
// groups already cover its count.
func (m *Machine) noMoreModels(ctx context.Context, i int) error {
	r := m.record
	if err := domain.CheckConsistency(r); err != nil {
		return reject(err, append(reasons(err), msgCountsOff)...)
	}
	if !domain.CheckBrandComplete(r, i) {
		err := fmt.Errorf("%w: %d %s trucks have no model", domain.ErrInconsistentTotals, r.Remaining(i), r.Brands[i])
		return reject(err, msgMissingInfo(r.Brands[i]), msgCountsOff)
	}
	return m.enterBrand(ctx, i)
}

func (m *Machine) modelDetail(ctx context.Context, i int, answer string) error {
	d := m.detail
	if d == nil {
		return fmt.Errorf("interview: no model in progress at %s", m.state)
	}
	if err := d.answer(answer); err != nil {
		return err
	}
	if !d.complete() {
		m.enter(ctx, modelState(d.step, i, d.spec.Model))
		return nil
	}

	if !m.sameModel(i) {
		m.enter(ctx, modelState(AskGroupSize, i, d.spec.Model))
		return nil
	}
	// A single model covers every truck of the brand.
	if err := m.record.AddGroup(d.spec, *m.record.BrandCounts[i]); err != nil {
		return err
	}
	m.detail = nil
	return m.enterBrand(ctx, i)
}

func (m *Machine) groupSize(ctx context.Context, i int, answer string) error {
	d := m.detail
	if d == nil {
		return fmt.Errorf("interview: no model in progress at %s", m.state)
	}
	r := m.record
	n, err := lexicon.ParseInt(answer)
	if err != nil {
		return reject(err, msgNotANumber)
	}
	if n > r.Remaining(i) {
		err := fmt.Errorf("%w: %d %s trucks but only %d left", domain.ErrInconsistentTotals, n, d.spec.Model, r.Remaining(i))
		return reject(err, msgGroupTooLarge)
	}
	if n <= 0 {
		return reject(outOfRange("group size", n), msgGroupNotPositive)
	}
	if err := r.AddGroup(d.spec, n); err != nil {
		return err
	}
	m.detail = nil
	if domain.CheckBrandComplete(r, i) {
		return m.enterBrand(ctx, i)
	}
	m.enter(ctx, brandState(AskModelName, i))
	return nil
}

// enterBrand moves to the first brand from i on that still lacks data. When
// none is left after i, earlier brands are checked again before finishing.
func (m *Machine) enterBrand(ctx context.Context, i int) error {
	r := m.record
	for ; i < len(r.Brands); i++ {
		if !domain.CheckBrandComplete(r, i) {
			return m.startBrand(ctx, i)
		}
		if err := m.settleSingleModel(ctx, i); err != nil {
			return err
		}
	}
	for j := range r.Brands {
		if !domain.CheckBrandComplete(r, j) {
			return m.startBrand(ctx, j)
		}
	}
	return m.finish(ctx, msgDone)
}

// startBrand clears brand i and asks for its count again.
func (m *Machine) startBrand(ctx context.Context, i int) error {
	if err := m.record.StartOverBrand(i); err != nil {
		return err
	}
	m.detail = nil
	if err := m.tell(ctx, msgStartBrand(m.record.Brands[i])); err != nil {
		return err
	}
	m.enter(ctx, brandState(AskBrandCount, i))
	return nil
}

// settleSingleModel flips a "several models" answer to "same model" when
// only one model was given for a complete brand.
func (m *Machine) settleSingleModel(ctx context.Context, i int) error {
	r := m.record
	if r.SameModel[i] == nil || *r.SameModel[i] || len(r.Models[i]) != 1 {
		return nil
	}
	if err := m.tell(ctx, msgChangedMind(r.Brands[i])); err != nil {
		return err
	}
	return r.SetSameModel(i, true)
}

func (m *Machine) finish(ctx context.Context, msg string) error {
	if err := m.tell(ctx, msg); err != nil {
		return err
	}
	m.detail = nil
	m.enter(ctx, State{Kind: Done})
	m.record.Freeze()
	m.logger.Info("interview complete", "company", m.record.Company, "trucks", m.record.TotalTrucks, "groups", len(m.record.Groups))
	if m.hooks.OnDone != nil {
		m.hooks.OnDone(ctx, m.record)
	}
	return nil
}

func (m *Machine) sameModel(i int) bool {
	p := m.record.SameModel[i]
	return p != nil && *p
}

func (m *Machine) enter(ctx context.Context, s State) {
	m.logger.Debug("state transition", "from", m.state.String(), "to", s.String())
	m.state = s
	if m.hooks.OnStateEnter != nil {
		m.hooks.OnStateEnter(ctx, &StateEvent{EventBase: newBase(EventStateEnter), State: s})
	}
}

func (m *Machine) tell(ctx context.Context, msg string) error {
	if err := m.conv.Tell(ctx, msg); err != nil {
		return fmt.Errorf("interview: tell: %w", err)
	}
	return nil
}

// rejection carries the messages explaining why an answer was not accepted.
type rejection struct {
	err  error
	msgs []string
}

func (r *rejection) Error() string { return r.err.Error() }
func (r *rejection) Unwrap() error { return r.err }

func reject(err error, msgs ...string) error {
	return &rejection{err: err, msgs: msgs}
}

// Rejected reports whether err is a rejected answer rather than a failure.
func Rejected(err error) bool {
	var rj *rejection
	return errors.As(err, &rj)
}

func outOfRange(what string, v any) error {
	return fmt.Errorf("%w: %s %v", domain.ErrOutOfRange, what, v)
}

// reasons extracts the user-facing diagnostic of a failed consistency check.
func reasons(err error) []string {
	var ce *domain.ConsistencyError
	if errors.As(err, &ce) {
		return []string{ce.Reason}
	}
	return nil
}
