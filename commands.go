package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pricing-estimator/domain"
	"pricing-estimator/service"
)

func newROICommand() *cobra.Command {
	var revenue, hours, rate string

	cmd := &cobra.Command{
		Use:   "roi",
		Short: "Estimate savings, ROI and payback period of an automation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := service.NewROIInput(revenue, hours, rate)
			return printROI(cmd.OutOrStdout(), input, service.CalculateROI(input))
		},
	}

	cmd.Flags().StringVar(&revenue, "revenue", "", "monthly revenue in euros")
	cmd.Flags().StringVar(&hours, "hours", "", "hours automated per month")
	cmd.Flags().StringVar(&rate, "rate", "50", "hourly rate in euros")

	return cmd
}

func newVideoCommand() *cobra.Command {
	var category, duration string

	cmd := &cobra.Command{
		Use:   "video",
		Short: "Estimate the production cost of a video",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, ok := domain.ParseVideoCategory(category); !ok {
				return fmt.Errorf("unknown category %q, expected one of %v", category, domain.VideoCategories())
			}
			input := service.NewVideoInput(category, duration)
			return printVideo(cmd.OutOrStdout(), input, service.CalculateVideoCost(input))
		},
	}

	cmd.Flags().StringVar(&category, "category", service.DefaultVideoCategory.String(), "corporate, event, commercial or social")
	cmd.Flags().StringVar(&duration, "duration", "", "duration in minutes")

	return cmd
}

func printROI(w io.Writer, input domain.ROIInput, result domain.ROIResult) error {
	view := service.NewROIView(result)
	_, err := fmt.Fprintf(w,
		"Monatlicher Umsatz:      %s\nAutomatisierte Stunden:  %s\nStundensatz:             %s\n\nMonatliche Ersparnis:    %s\nJährliche Ersparnis:     %s\nROI:                     %s\nAmortisationsdauer:      %s\n",
		service.FormatEuro(input.MonthlyRevenue),
		service.FormatQuantity(input.AutomationHours),
		service.FormatEuro(input.HourlyRate),
		view.MonthlySavings,
		view.AnnualSavings,
		view.ROI,
		view.PaybackMonths,
	)
	return err
}

func printVideo(w io.Writer, input domain.VideoInput, result domain.VideoResult) error {
	view := service.NewVideoView(result)
	_, err := fmt.Fprintf(w,
		"Kategorie:        %s (%s/Min.)\nDauer:            %s Min.\n\nProduktion:       %s\nPostproduktion:   %s\nGesamt:           %s\n",
		input.Category.Label(),
		service.FormatEuro(service.RatePerMinute(input.Category)),
		service.FormatQuantity(input.DurationMinutes),
		view.BaseCost,
		view.PostProductionCost,
		view.Total,
	)
	return err
}
