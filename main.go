package main

import (
	"fmt"

	"github.com/meenmo/zerocurve/curve"
	"github.com/meenmo/zerocurve/curve/bootstrap"
)

func main() {
	// Semi-annual 100 FV bonds priced on the valuation date; periods are days.
	schedules := []bootstrap.CashFlowSchedule{
		{ID: "CAN 0.25 Aug24", MaturityPeriod: 182, FinalAmount: 100.125, TargetPrice: 98.91},
		{ID: "CAN 0.75 Feb25", MaturityPeriod: 365, InterimPeriods: []int{182}, PaymentAmount: 0.375, FinalAmount: 100.375, TargetPrice: 97.82},
		{ID: "CAN 1.50 Aug25", MaturityPeriod: 547, InterimPeriods: []int{182, 365}, PaymentAmount: 0.75, FinalAmount: 100.75, TargetPrice: 97.64},
		{ID: "CAN 1.25 Mar26", MaturityPeriod: 760, InterimPeriods: []int{213, 395, 578}, PaymentAmount: 0.625, FinalAmount: 100.625, TargetPrice: 95.93},
		{ID: "CAN 0.50 Sep26", MaturityPeriod: 944, InterimPeriods: []int{213, 395, 578, 760}, PaymentAmount: 0.25, FinalAmount: 100.25, TargetPrice: 92.37},
	}

	spots, err := bootstrap.New().Build(schedules, bootstrap.Continuous)
	if err != nil {
		fmt.Printf("bootstrap: %v\n", err)
		return
	}

	for _, p := range spots.Pairs() {
		fmt.Printf("%4d  %.4f%%\n", p.Period, p.Rate*100.0)
	}

	fwd, err := curve.ForwardRate(spots, 365, 730)
	if err != nil {
		fmt.Printf("forward: %v\n", err)
		return
	}
	fmt.Printf("1Y1Y forward: %.4f%%\n", fwd*100.0)
}
