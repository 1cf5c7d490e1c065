package cmd

import (
	"bytes"
	"testing"

	"github.com/mouse-blink/trimsrc/internal/domain"
	domainmocks "github.com/mouse-blink/trimsrc/internal/domain/mocks"
	m "github.com/mouse-blink/trimsrc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Plans(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Plan(mock.Anything, mock.MatchedBy(func(args domain.PlanArgs) bool {
		return len(args.Paths) == 1 &&
			args.Paths[0] == m.Path("./...") &&
			args.Output == m.Path(defaultOutputDir)
	})).Return([]m.FileReport{}, nil)

	cmd.SetArgs([]string{"list", "./..."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_WithExcludePatterns(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd := newRootCmd()
	cmd.AddCommand(newListCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	mockWorkflow.EXPECT().Plan(mock.Anything, mock.MatchedBy(func(args domain.PlanArgs) bool {
		return assert.ObjectsAreEqual([]string{"^gen/", "_test"}, args.Exclude) &&
			args.Rules.Output.Mode == m.OutputRegroup
	})).Return(nil, nil)

	cmd.SetArgs([]string{"list", "-x", "^gen/", "-x", "_test", "--mode", "regroup", "."})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_HasNoManifestFlag(t *testing.T) {
	cmd := newListCmd()

	assert.Nil(t, cmd.Flags().Lookup("manifest"))
	assert.NotNil(t, cmd.Flags().Lookup("out"))
}
