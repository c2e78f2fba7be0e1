package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		in        ListingInput
		wantErr   bool
		wantViews int
	}{
		{name: "valid", in: ListingInput{ItemName: "coat", Price: 20, DaysListed: 3, InterestedCount: 1, Views: 9}, wantViews: 9},
		{name: "negative views coerced", in: ListingInput{ItemName: "coat", Price: 20, Views: -4}},
		{name: "zero price", in: ListingInput{ItemName: "coat"}, wantErr: true},
		{name: "negative price", in: ListingInput{ItemName: "coat", Price: -1}, wantErr: true},
		{name: "NaN price", in: ListingInput{ItemName: "coat", Price: math.NaN()}, wantErr: true},
		{name: "infinite price", in: ListingInput{ItemName: "coat", Price: math.Inf(1)}, wantErr: true},
		{name: "negative infinite price", in: ListingInput{ItemName: "coat", Price: math.Inf(-1)}, wantErr: true},
		{name: "negative days", in: ListingInput{ItemName: "coat", Price: 20, DaysListed: -1}, wantErr: true},
		{name: "negative interested", in: ListingInput{ItemName: "coat", Price: 20, InterestedCount: -2}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := tt.in
			err := in.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantViews, in.Views)
		})
	}
}
