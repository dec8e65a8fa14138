package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// FuncHealthChecker reports healthy while its check succeeds.
type FuncHealthChecker struct {
	check func(ctx context.Context) error
}

func NewFuncHealthChecker(check func(ctx context.Context) error) *FuncHealthChecker {
	return &FuncHealthChecker{check: check}
}

func (hc *FuncHealthChecker) Healthy(ctx context.Context) bool {
	return hc.check(ctx) == nil
}
