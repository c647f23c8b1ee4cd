package wfcviz_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mosaicwave/wfc/wfc"
	"github.com/mosaicwave/wfc/wfcviz"
	"github.com/stretchr/testify/require"
)

func TestTraceRecordAccumulates(t *testing.T) {
	trace := wfcviz.NewTrace()
	trace.Record(wfc.Snapshot{Observations: 1, DomainSizes: []int{2, 2}})
	trace.Record(wfc.Snapshot{Observations: 2, DomainSizes: []int{1, 2}})

	var buf bytes.Buffer
	require.NoError(t, wfcviz.Render(trace, &buf))
	require.Greater(t, buf.Len(), 0)
	require.True(t, strings.Contains(buf.String(), "<html"))
}

func TestRenderEmptyTrace(t *testing.T) {
	trace := wfcviz.NewTrace()
	var buf bytes.Buffer
	require.NoError(t, wfcviz.Render(trace, &buf))
	require.Greater(t, buf.Len(), 0)
}
