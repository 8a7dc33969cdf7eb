package currency

import (
	"context"
	"sync"

	"github.com/heartmarshall/officedash-backend/internal/domain"
)

var _ rateFetcher = &rateFetcherMock{}

type rateFetcherMock struct {
	FetchRateFunc func(ctx context.Context, code domain.Currency) (domain.RateQuote, error)

	calls struct {
		FetchRate []struct {
			Ctx  context.Context
			Code domain.Currency
		}
	}
	lockFetchRate sync.RWMutex
}

func (mock *rateFetcherMock) FetchRate(ctx context.Context, code domain.Currency) (domain.RateQuote, error) {
	if mock.FetchRateFunc == nil {
		panic("rateFetcherMock.FetchRateFunc: method is nil but rateFetcher.FetchRate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code domain.Currency
	}{
		Ctx:  ctx,
		Code: code,
	}
	mock.lockFetchRate.Lock()
	mock.calls.FetchRate = append(mock.calls.FetchRate, callInfo)
	mock.lockFetchRate.Unlock()
	return mock.FetchRateFunc(ctx, code)
}

func (mock *rateFetcherMock) FetchRateCalls() []struct {
	Ctx  context.Context
	Code domain.Currency
} {
	mock.lockFetchRate.RLock()
	calls := mock.calls.FetchRate
	mock.lockFetchRate.RUnlock()
	return calls
}
