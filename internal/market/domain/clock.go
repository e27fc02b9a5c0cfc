package domain

import "time"

//go:generate mockgen -source=clock.go -destination=../../../gen/mocks/market/clock.go -package=mocks

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}
