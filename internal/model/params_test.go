package model

import "testing"

func TestValidateRejectsLowKappa(t *testing.T) {
	p := DefaultRunParams()
	p.BinWidth, p.BinHeight = 10, 10
	p.Kappa = 0.5
	if err := p.Validate(5); err == nil {
		t.Errorf("expected error for kappa < 1")
	}
}

func TestValidateRejectsOversizedTabuList(t *testing.T) {
	p := DefaultRunParams()
	p.BinWidth, p.BinHeight = 10, 10
	p.Algorithm = AlgorithmTabu
	p.TabuListSize = 15
	if err := p.Validate(5); err == nil {
		t.Errorf("expected error for tabu_list_size >= 3*n")
	}
}

func TestValidateAcceptsDefaults(t *testing.T) {
	p := DefaultRunParams()
	p.BinWidth, p.BinHeight = 100, 100
	if err := p.Validate(10); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}
