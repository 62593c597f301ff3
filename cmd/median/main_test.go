package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		stdin          string
		expectedCode   int
		expectedOut    string
		expectedErrOut string
	}{
		{
			name:         "arguments odd count",
			args:         []string{"3", "1", "4", "1", "5"},
			expectedCode: 0,
			expectedOut:  "Sorted: [1, 1, 3, 4, 5]\nMedian: 3\n",
		},
		{
			name:         "arguments even count",
			args:         []string{"2", "4"},
			expectedCode: 0,
			expectedOut:  "Sorted: [2, 4]\nMedian: 3\n",
		},
		{
			name:         "interactive comma separated",
			stdin:        "7, 2, 9, 4\n",
			expectedCode: 0,
			expectedOut:  inputPrompt + "Sorted: [2, 4, 7, 9]\nMedian: 5.5\n",
		},
		{
			name:           "invalid argument",
			args:           []string{"1", "two"},
			expectedCode:   1,
			expectedErrOut: "Error: invalid number \"two\"\n",
		},
		{
			name:           "blank interactive line",
			stdin:          "   \n",
			expectedCode:   1,
			expectedOut:    inputPrompt,
			expectedErrOut: "Error: no numbers provided\n",
		},
		{
			name:         "interactive line without trailing newline",
			stdin:        "3 1 2",
			expectedCode: 0,
			expectedOut:  inputPrompt + "Sorted: [1, 2, 3]\nMedian: 2\n",
		},
		{
			name:         "interactive line longer than 64 KiB",
			stdin:        strings.Repeat("1 ", 40000) + "\n",
			expectedCode: 0,
			expectedOut:  inputPrompt + "Sorted: [" + strings.TrimSuffix(strings.Repeat("1, ", 40000), ", ") + "]\nMedian: 1\n",
		},
		{
			name:         "largest finite values",
			args:         []string{"1.7e308", "1.7e308"},
			expectedCode: 0,
			expectedOut:  "Sorted: [1.7e+308, 1.7e+308]\nMedian: 1.7e+308\n",
		},
		{
			name:           "no interactive input",
			stdin:          "",
			expectedCode:   1,
			expectedOut:    inputPrompt + "\n",
			expectedErrOut: "No input provided.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer

			code := run(context.Background(), tt.args, strings.NewReader(tt.stdin), &out, &errOut)

			assert.Equal(t, tt.expectedCode, code)
			assert.Equal(t, tt.expectedOut, out.String())
			assert.Equal(t, tt.expectedErrOut, errOut.String())
		})
	}
}

func TestRun_ReadError(t *testing.T) {
	var out, errOut bytes.Buffer

	code := run(context.Background(), nil, iotest.ErrReader(errors.New("stdin closed")), &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Equal(t, inputPrompt+"\n", out.String())
	assert.Equal(t, "Error: stdin closed\n", errOut.String())
}
