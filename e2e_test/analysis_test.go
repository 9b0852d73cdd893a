//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jsphweid/modalchords/cmd"
	"github.com/jsphweid/modalchords/model"
	"github.com/stretchr/testify/assert"
)

func createAnalysisReqBody(root string, mode string, seventh bool) io.Reader {
	body := map[string]any{"root": root, "base_scale": "major", "mode": mode, "seventh": seventh}
	data, err := json.Marshal(body)
	if err != nil {
		panic(err.Error())
	}
	return bytes.NewReader(data)
}

func analyze(t *testing.T, body io.Reader) model.AnalysisResponse {
	req := httptest.NewRequest(http.MethodPost, "/analysis", body)
	w := httptest.NewRecorder()
	cmd.HandleAnalysis(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(t, 200, resp.StatusCode)

	var res model.AnalysisResponse
	err := json.Unmarshal(respBody, &res)
	if err != nil {
		panic(err.Error())
	}
	return res
}

func TestCMajorTriadsE2E(t *testing.T) {
	res := analyze(t, createAnalysisReqBody("C", "ionian", false))

	assert := assert.New(t)
	assert.Equal("C\tD\tE\tF\tG\tA\tB\n"+
		"I\tii\tiii\tIV\tV\tvi\tVIIdim\n"+
		"C\tD-\tE-\tF\tG\tA-\tBdim", res.Text)
}

func TestFLydianSeventhsE2E(t *testing.T) {
	res := analyze(t, createAnalysisReqBody("F", "lydian", true))

	assert := assert.New(t)
	assert.Equal([]string{"F", "G", "A", "B", "C", "D", "E"}, res.Scale)
	assert.Equal("FΔ7", res.Chords[0].Name)
	assert.Equal("IVø", res.Chords[3].Label)
}
