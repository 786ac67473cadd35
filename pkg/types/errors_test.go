package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProgramError(t *testing.T) {
	err := ParseProgramError(6000)
	var perr *ProgramError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 6000, perr.Code)
	require.NotEmpty(t, perr.Message)

	err = ParseProgramError(9999)
	require.Error(t, err)
	require.False(t, errors.As(err, &perr))
}

func TestParseSimulationErrorCustomCode(t *testing.T) {
	logs := []string{
		"Program log: AnchorError caused by account: sol_vault. Error Code: NotEnoughSol.",
	}
	errVal := map[string]interface{}{
		"InstructionError": []interface{}{
			float64(0),
			map[string]interface{}{"Custom": float64(6001)},
		},
	}

	err := ParseSimulationError(errVal, logs)
	var perr *ProgramError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 6001, perr.Code)
	require.Contains(t, perr.Message, "sol_vault")
}

func TestParseSimulationErrorFallback(t *testing.T) {
	require.NoError(t, ParseSimulationError(nil, nil))

	err := ParseSimulationError("BlockhashNotFound", nil)
	var serr *SimulationError
	require.ErrorAs(t, err, &serr)
}

func TestParseSimulationErrorAnchorUninitialized(t *testing.T) {
	errVal := map[string]interface{}{
		"InstructionError": []interface{}{
			float64(0),
			map[string]interface{}{"Custom": float64(3012)},
		},
	}
	err := ParseSimulationError(errVal, []string{
		"Program log: AnchorError caused by account: client.",
	})
	var perr *ProgramError
	require.ErrorAs(t, err, &perr)
	require.Contains(t, perr.Message, "client")
	require.Contains(t, perr.Message, "not initialized")
}
