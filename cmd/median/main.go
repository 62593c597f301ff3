package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sshah229/Comcast/config"
	"github.com/sshah229/Comcast/median"
	"github.com/sshah229/Comcast/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const inputPrompt = "Enter numbers separated by spaces or commas: "

func main() {
	config.LoadEnvFile(config.DefaultEnvDirs()...)

	ctx := context.Background()
	shutdown, err := tracing.InitProvider(ctx, "median-cli", os.Getenv(config.EnvOTelEndpoint))
	if err != nil {
		log.Fatalf("failed to initialize tracing provider: %v", err)
	}

	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)

	if err := shutdown(ctx); err != nil {
		log.Printf("failed to shutdown tracing provider: %v", err)
	}
	os.Exit(code)
}

// run parses numbers from args, or from one line of in when args is empty,
// and prints the sorted sequence and its median. It returns the exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	_, span := otel.Tracer("median-cli").Start(ctx, "sort-and-find-median")
	defer span.End()

	if len(args) == 0 {
		fmt.Fprint(out, inputPrompt)
		line, err := readLine(in)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			fmt.Fprintln(errOut, "No input provided.")
			span.SetStatus(codes.Error, "no input provided")
			return 1
		}
		if err != nil {
			fmt.Fprintln(out)
			fmt.Fprintf(errOut, "Error: %v\n", err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to read input")
			return 1
		}
		args = []string{line}
	}

	numbers, err := median.ParseNumbers(args)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid input")
		return 1
	}
	span.SetAttributes(attribute.Int("numbers.count", len(numbers)))

	result, err := median.SortAndFindMedian(numbers)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "median failed")
		return 1
	}

	sorted := append([]float64(nil), numbers...)
	median.Sort(sorted)

	fmt.Fprintf(out, "Sorted: %s\n", median.FormatSequence(sorted))
	fmt.Fprintf(out, "Median: %s\n", median.FormatNumber(result))
	return 0
}

// readLine returns one line of any length. A final line without a newline
// still counts; io.EOF is returned only when nothing was read.
func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
