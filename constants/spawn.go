package constants

import "time"

// Spawn timers
// Stars use three independent timers; their superimposed cadence is part of the look
const (
	StarSpawnIntervalA = 500 * time.Millisecond
	StarSpawnIntervalB = 720 * time.Millisecond
	StarSpawnIntervalC = 230 * time.Millisecond

	AlienSpawnInterval = 1500 * time.Millisecond
)

// StarSpawnIntervals lists the star timer periods in registration order
var StarSpawnIntervals = []time.Duration{
	StarSpawnIntervalA,
	StarSpawnIntervalB,
	StarSpawnIntervalC,
}
