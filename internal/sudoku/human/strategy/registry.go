package strategy

import "fmt"

// Registry organizes every finder by tier and solving order, with
// per-technique enable/disable and a Detector signature that reports
// ok=false when a technique does not apply.

// Detector finds one step of a given technique, or reports none found.
type Detector func(b BoardInterface) (*Step, bool)

// Descriptor holds metadata about one finder.
type Descriptor struct {
	Name        string
	Slug        string
	Tier        string
	Description string
	Detector    Detector
	Enabled     bool
	Order       int
}

// Registry holds all finders, grouped by tier, in ascending solving order.
type Registry struct {
	bySlug    map[string]*Descriptor
	tierOrder map[string][]string
}

// Tiers in the order a solver should try them.
const (
	TierSimple  = "simple"
	TierMedium  = "medium"
	TierHard    = "hard"
	TierExtreme = "extreme"
)

var AllTiers = []string{TierSimple, TierMedium, TierHard, TierExtreme}

// NewRegistry builds the registry with every finder enabled.
func NewRegistry() *Registry {
	r := &Registry{
		bySlug:    make(map[string]*Descriptor),
		tierOrder: make(map[string][]string),
	}
	r.registerAll()
	return r
}

func (r *Registry) register(d Descriptor) {
	d.Enabled = true
	cp := d
	r.bySlug[d.Slug] = &cp
	r.tierOrder[d.Tier] = append(r.tierOrder[d.Tier], d.Slug)
}

func (r *Registry) registerAll() {
	r.register(Descriptor{Name: "Naked Single", Slug: "naked-single", Tier: TierSimple, Order: 1,
		Description: "A cell with only one possible candidate",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryNakedSingle(b, NakedSingleParams{}) }})
	r.register(Descriptor{Name: "Hidden Single", Slug: "hidden-single", Tier: TierSimple, Order: 2,
		Description: "A digit confined to one cell of a row, column or box",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryHiddenSingle(b, HiddenSingleParams{}) }})
	r.register(Descriptor{Name: "Naked Pair", Slug: "naked-pair", Tier: TierSimple, Order: 3,
		Description: "Two cells with the same two candidates",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryNakedSubset(b, 2) }})
	r.register(Descriptor{Name: "Hidden Pair", Slug: "hidden-pair", Tier: TierSimple, Order: 4,
		Description: "Two digits confined to the same two cells",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryHiddenSubset(b, 2) }})
	r.register(Descriptor{Name: "Pointing", Slug: "pointing", Tier: TierSimple, Order: 5,
		Description: "A digit in a box confined to one row or column",
		Detector:    TryPointing})
	r.register(Descriptor{Name: "Claiming", Slug: "claiming", Tier: TierSimple, Order: 6,
		Description: "A digit in a row or column confined to one box",
		Detector:    TryClaiming})
	r.register(Descriptor{Name: "Naked Triple", Slug: "naked-triple", Tier: TierSimple, Order: 7,
		Description: "Three cells whose candidates union to three digits",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryNakedSubset(b, 3) }})
	r.register(Descriptor{Name: "Hidden Triple", Slug: "hidden-triple", Tier: TierSimple, Order: 8,
		Description: "Three digits confined to the same three cells",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryHiddenSubset(b, 3) }})

	r.register(Descriptor{Name: "Naked Quad", Slug: "naked-quad", Tier: TierMedium, Order: 9,
		Description: "Four cells whose candidates union to four digits",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryNakedSubset(b, 4) }})
	r.register(Descriptor{Name: "Hidden Quad", Slug: "hidden-quad", Tier: TierMedium, Order: 10,
		Description: "Four digits confined to the same four cells",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryHiddenSubset(b, 4) }})
	r.register(Descriptor{Name: "X-Wing", Slug: "x-wing", Tier: TierMedium, Order: 11,
		Description: "A digit forming a 2x2 fish pattern",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryFish(b, 2) }})
	r.register(Descriptor{Name: "Swordfish", Slug: "swordfish", Tier: TierMedium, Order: 12,
		Description: "A digit forming a 3x3 fish pattern",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryFish(b, 3) }})
	r.register(Descriptor{Name: "XY-Wing", Slug: "xy-wing", Tier: TierMedium, Order: 13,
		Description: "A bivalue hinge with two bivalue pincers",
		Detector:    TryXYWing})
	r.register(Descriptor{Name: "XYZ-Wing", Slug: "xyz-wing", Tier: TierMedium, Order: 14,
		Description: "A trivalue hinge with two bivalue pincers",
		Detector:    TryXYZWing})
	r.register(Descriptor{Name: "Simple Colouring", Slug: "simple-coloring", Tier: TierMedium, Order: 15,
		Description: "Two-colour a strong-link chain for contradictions and wraps",
		Detector:    TryColoring})

	r.register(Descriptor{Name: "Jellyfish", Slug: "jellyfish", Tier: TierHard, Order: 16,
		Description: "A digit forming a 4x4 fish pattern",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryFish(b, 4) }})
	r.register(Descriptor{Name: "X-Chain", Slug: "x-chain", Tier: TierHard, Order: 17,
		Description: "Alternating strong/weak chain for one digit, including Turbot Fish",
		Detector:    TryXChain})
	r.register(Descriptor{Name: "XY-Chain", Slug: "xy-chain", Tier: TierHard, Order: 18,
		Description: "Chain through bivalue cells sharing a digit end to end",
		Detector:    TryXYChain})
	r.register(Descriptor{Name: "W-Wing", Slug: "w-wing", Tier: TierHard, Order: 19,
		Description: "Two bivalue cells with matching candidates joined by a strong link",
		Detector:    TryWWing})
	r.register(Descriptor{Name: "Remote Pair", Slug: "remote-pair", Tier: TierHard, Order: 20,
		Description: "A chain of cells all sharing the same two candidates",
		Detector:    TryRemotePair})

	r.register(Descriptor{Name: "Finned X-Wing", Slug: "finned-x-wing", Tier: TierExtreme, Order: 21,
		Description: "An X-Wing with extra candidates confined to one box",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryFinnedFish(b, 2) }})
	r.register(Descriptor{Name: "Finned Swordfish", Slug: "finned-swordfish", Tier: TierExtreme, Order: 22,
		Description: "A Swordfish with extra candidates confined to one box",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryFinnedFish(b, 3) }})
	r.register(Descriptor{Name: "Finned Jellyfish", Slug: "finned-jellyfish", Tier: TierExtreme, Order: 23,
		Description: "A Jellyfish with extra candidates confined to one box",
		Detector:    func(b BoardInterface) (*Step, bool) { return TryFinnedFish(b, 4) }})
	r.register(Descriptor{Name: "Sue de Coq", Slug: "sue-de-coq", Tier: TierExtreme, Order: 24,
		Description: "Two intersecting almost locked sets at a box/line intersection",
		Detector:    TrySueDeCoq})
	r.register(Descriptor{Name: "ALS-XZ", Slug: "als-xz", Tier: TierExtreme, Order: 25,
		Description: "Two almost locked sets sharing a restricted common digit",
		Detector:    TryALSXZ})
	r.register(Descriptor{Name: "ALS-XY-Wing", Slug: "als-xy-wing", Tier: TierExtreme, Order: 26,
		Description: "Three almost locked sets in a wing shape",
		Detector:    TryALSXYWing})
	r.register(Descriptor{Name: "AIC", Slug: "aic", Tier: TierExtreme, Order: 27,
		Description: "General alternating inference chain over single-cell and grouped nodes",
		Detector:    TryAIC})
}

// SetEnabled toggles a technique by slug; reports whether it was found.
func (r *Registry) SetEnabled(slug string, enabled bool) bool {
	d, ok := r.bySlug[slug]
	if !ok {
		return false
	}
	d.Enabled = enabled
	return true
}

// ByTier returns all enabled descriptors of one tier, in solving order.
func (r *Registry) ByTier(tier string) []*Descriptor {
	var out []*Descriptor
	for _, slug := range r.tierOrder[tier] {
		if d := r.bySlug[slug]; d != nil && d.Enabled {
			out = append(out, d)
		}
	}
	return out
}

// TryFind tries every enabled finder across all tiers in order, returning
// the first step found along with the slug of the technique that found it.
func (r *Registry) TryFind(b BoardInterface) (*Step, string, bool) {
	for _, tier := range AllTiers {
		for _, d := range r.ByTier(tier) {
			if step, ok := d.Detector(b); ok {
				return step, d.Slug, true
			}
		}
	}
	return nil, "", false
}

// Get returns a descriptor by slug.
func (r *Registry) Get(slug string) (*Descriptor, bool) {
	d, ok := r.bySlug[slug]
	return d, ok
}

// TierOf reports which tier a slug belongs to.
func (r *Registry) TierOf(slug string) (string, bool) {
	d, ok := r.bySlug[slug]
	if !ok {
		return "", false
	}
	return d.Tier, true
}

func (r *Registry) String() string {
	return fmt.Sprintf("Registry(%d techniques)", len(r.bySlug))
}
