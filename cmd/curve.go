package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/klippa-app/snapprint/imaging"

	"github.com/spf13/cobra"
	"github.com/wcharczuk/go-chart/v2"
)

var (
	// Used for flags.
	curveWidth  int
	curveHeight int
)

func init() {
	addLumaOption(curveCmd)
	curveCmd.Flags().IntVarP(&curveWidth, "width", "", 1024, "Width of the chart in pixels")
	curveCmd.Flags().IntVarP(&curveHeight, "height", "", 768, "Height of the chart in pixels")

	rootCmd.AddCommand(curveCmd)
}

var curveCmd = &cobra.Command{
	Use:   "curve [output]",
	Short: "Chart how a luma value changes channel values",
	Long:  "Renders the transfer curve of the brightness lift for the given luma as a PNG chart, so you can judge a value before printing with it.\n[output] can either be a file path or - for stdout.",
	Args: func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(cmd, args); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}

		if curveWidth < 1 || curveHeight < 1 {
			return newExitCodeError(fmt.Errorf("chart size %dx%d is invalid", curveWidth, curveHeight), ExitCodeInvalidArguments)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var out io.Writer = cmd.OutOrStdout()
		if args[0] != stdFilename {
			outFile, err := os.Create(args[0])
			if err != nil {
				return newExitCodeError(fmt.Errorf("could not create output file %s: %w", args[0], err), ExitCodeInvalidOutput)
			}
			defer outFile.Close()
			out = outFile
		}

		err := renderCurve(out, luma, curveWidth, curveHeight)
		if err != nil {
			return newExitCodeError(fmt.Errorf("could not render curve: %w", err), ExitCodeEncodeError)
		}

		if args[0] != stdFilename {
			cmd.Printf("Rendered curve for luma %d into %s\n", luma, args[0])
		}
		return nil
	},
}

// renderCurve charts RemapChannel for every channel value next to the
// identity line.
func renderCurve(w io.Writer, offset uint8, width, height int) error {
	var xvalues, yvalues, identity []float64
	for c := 0; c <= 255; c++ {
		xvalues = append(xvalues, float64(c))
		yvalues = append(yvalues, float64(imaging.RemapChannel(uint8(c), offset)))
		identity = append(identity, float64(c))
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("Luma %d", offset),
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name: "Input",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
		},
		YAxis: chart.YAxis{
			Name: "Output",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 255.0,
			},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name: "Unchanged",
				Style: chart.Style{
					StrokeColor:     chart.ColorAlternateGray,
					StrokeDashArray: []float64{5.0, 5.0},
				},
				XValues: xvalues,
				YValues: identity,
			},
			chart.ContinuousSeries{
				Name: fmt.Sprintf("Luma %d", offset),
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
				},
				XValues: xvalues,
				YValues: yvalues,
			},
		},
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	return graph.Render(chart.PNG, w)
}
