package util

import "github.com/josefdc/Algoritmos-Despacho/internal/responses"

// Totals sums waiting, response and turnaround times over the details.
func Totals(proccessDetails []responses.ProcessResponse) (waitingTimeSum, responseTimeSum, turnAroundTimeSum int) {
	for _, proccess := range proccessDetails {
		waitingTimeSum += proccess.WaitingTime
		responseTimeSum += proccess.ResponseTime
		turnAroundTimeSum += proccess.TurnAroundTime
	}
	return
}

// CalculateAverage returns the arithmetic means of waiting, response and
// turnaround times. An empty slice yields zeros.
func CalculateAverage(proccessDetails []responses.ProcessResponse) (averageWaitingTime, averageResponseTime, averageTimeAroundTime float64) {
	if len(proccessDetails) == 0 {
		return
	}
	waitingTimeSum, responseTimeSum, turnAroundTimeSum := Totals(proccessDetails)

	proccessCount := float64(len(proccessDetails))

	averageWaitingTime = float64(waitingTimeSum) / proccessCount
	averageResponseTime = float64(responseTimeSum) / proccessCount
	averageTimeAroundTime = float64(turnAroundTimeSum) / proccessCount
	return
}
