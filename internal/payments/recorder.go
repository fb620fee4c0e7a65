package payments

import (
	"context"

	"github.com/goodnatureofminers/payouts7000-backend/internal/model"
)

type recorders []SubmissionRecorder

func newRecorders(rs ...SubmissionRecorder) recorders {
	out := make(recorders, 0, len(rs))
	for _, r := range rs {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

func (rs recorders) RecordSubmission(ctx context.Context, attempt model.SubmissionAttempt) {
	for _, r := range rs {
		r.RecordSubmission(ctx, attempt)
	}
}
