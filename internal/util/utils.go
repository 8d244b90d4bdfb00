package util

import "cpu-scheduler/internal/core"

func CalculateAverage(processes []core.Process) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(processes) == 0 {
		return
	}
	var waitingTimeSum int
	var responseTimeSum int
	var turnAroundTimeSum int

	for _, process := range processes {
		waitingTimeSum += process.WaitingTime
		responseTimeSum += process.ResponseTime
		turnAroundTimeSum += process.TurnAroundTime
	}

	processCount := float64(len(processes))

	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return
}
