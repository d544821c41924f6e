package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmarrero/jobtrack/models"
)

func TestValidateCreation(t *testing.T) {
	v := NewJobValidator()

	tests := []struct {
		name string
		req  models.CreateJobRequest
		want map[string]string
	}{
		{
			name: "all fields present",
			req: models.CreateJobRequest{
				Title: "Go Developer", Company: "Initech",
				URL: "https://jobs.example/1", Location: "Austin, TX",
			},
			want: map[string]string{},
		},
		{
			name: "missing company",
			req: models.CreateJobRequest{
				Title: "Go Developer", URL: "https://jobs.example/1", Location: "Austin, TX",
			},
			want: map[string]string{FieldCompany: MsgCompanyRequired},
		},
		{
			name: "whitespace counts as blank",
			req: models.CreateJobRequest{
				Title: "   ", Company: "Initech",
				URL: "https://jobs.example/1", Location: "Austin, TX",
			},
			want: map[string]string{FieldTitle: MsgTitleRequired},
		},
		{
			name: "each blank field reported independently",
			req:  models.CreateJobRequest{},
			want: map[string]string{
				FieldTitle:    MsgTitleRequired,
				FieldCompany:  MsgCompanyRequired,
				FieldURL:      MsgURLRequired,
				FieldLocation: MsgLocationRequired,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, v.ValidateCreation(tt.req))
		})
	}
}
