package draft

// Draft is the complete editing state for one proposal.
//
// Draft is an immutable value: every transition below returns a new
// Draft and leaves the receiver untouched. This keeps undo/redo and the
// stale-acceptance check simple - comparing two drafts is comparing two
// values, never chasing shared pointers.
//
// Overrides live in a separate override.Store owned by the same editing
// session; the draft carries everything else.
type Draft struct {
	Token     string            `json:"token"`
	Client    Client            `json:"client"`
	Firm      Firm              `json:"firm"`
	Services  []ServiceSelection `json:"services"`
	Pricing   PricingConfig     `json:"pricing"`
	Generated *GeneratedContent `json:"generated,omitempty"`
}

// cloneServices copies the selection slice so transitions never alias
// the receiver's backing array.
func (d Draft) cloneServices() []ServiceSelection {
	out := make([]ServiceSelection, len(d.Services))
	copy(out, d.Services)
	return out
}

// SelectedServices returns the selected services in selection order.
func (d Draft) SelectedServices() []ServiceSelection {
	var out []ServiceSelection
	for _, s := range d.Services {
		if s.Selected {
			out = append(out, s)
		}
	}
	return out
}

// ServiceIDs returns all service ids in selection order.
func (d Draft) ServiceIDs() []string {
	ids := make([]string, len(d.Services))
	for i, s := range d.Services {
		ids[i] = s.ServiceID
	}
	return ids
}

// WithServiceToggled returns a draft with the service's Selected flag
// set. Unknown service ids are a no-op: selections are created at
// catalog load and never added later.
func (d Draft) WithServiceToggled(serviceID string, selected bool) Draft {
	services := d.cloneServices()
	for i := range services {
		if services[i].ServiceID == serviceID {
			services[i].Selected = selected
		}
	}
	d.Services = services
	return d
}

// WithServiceFee returns a draft with the service's custom initial fee
// set. A nil fee reverts to the catalog suggestion.
func (d Draft) WithServiceFee(serviceID string, fee *Money) Draft {
	services := d.cloneServices()
	for i := range services {
		if services[i].ServiceID == serviceID {
			services[i].CustomFee = copyMoney(fee)
		}
	}
	d.Services = services
	return d
}

// WithServiceMonthlyFee returns a draft with the service's custom
// monthly fee set. A nil fee reverts to the catalog suggestion.
func (d Draft) WithServiceMonthlyFee(serviceID string, fee *Money) Draft {
	services := d.cloneServices()
	for i := range services {
		if services[i].ServiceID == serviceID {
			services[i].CustomMonthlyFee = copyMoney(fee)
		}
	}
	d.Services = services
	return d
}

// WithServiceText returns a draft with the service's custom description
// text set. Empty text reverts to generated or catalog default text.
func (d Draft) WithServiceText(serviceID, text string) Draft {
	services := d.cloneServices()
	for i := range services {
		if services[i].ServiceID == serviceID {
			services[i].CustomText = text
		}
	}
	d.Services = services
	return d
}

// WithPricingMode returns a draft switched to the given pricing mode.
//
// Mode switches reset mode-incompatible derived state: leaving global
// mode clears the selected pricing template reference and its
// exclusions/guarantees text. Per-service fees are never touched, so
// services remain the source of truth outside global mode and a
// round-trip through global mode reproduces identical totals.
func (d Draft) WithPricingMode(mode PricingMode) Draft {
	if mode == d.Pricing.Mode {
		return d
	}
	p := d.Pricing
	p.Mode = mode
	if mode != ModeGlobal {
		p.TemplateRef = ""
		p.Exclusions = ""
		p.Guarantees = ""
	}
	d.Pricing = p
	return d
}

// WithInitialPayment returns a draft with the global initial payment set.
func (d Draft) WithInitialPayment(amount Money) Draft {
	d.Pricing.InitialPayment = amount
	return d
}

// WithMonthlyRetainer returns a draft with the retainer amount and
// period set.
func (d Draft) WithMonthlyRetainer(amount Money, months int) Draft {
	d.Pricing.MonthlyRetainer = amount
	d.Pricing.RetainerMonths = months
	return d
}

// WithInstallments returns a draft with the installment schedule
// replaced. The slice is copied.
func (d Draft) WithInstallments(installments []Installment) Draft {
	var inst []Installment
	if installments != nil {
		inst = make([]Installment, len(installments))
		copy(inst, installments)
	}
	d.Pricing.Installments = inst
	return d
}

// WithGenerated returns a draft with AI-generated content attached.
func (d Draft) WithGenerated(content *GeneratedContent) Draft {
	d.Generated = content
	return d
}

func copyMoney(m *Money) *Money {
	if m == nil {
		return nil
	}
	v := *m
	return &v
}
