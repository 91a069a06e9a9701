package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/wetsplit"
	"github.com/fwojciec/wetsplit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentWriter_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ wetsplit.FragmentWriter = &mock.FragmentWriter{}
}

func TestFragmentWriter_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *wetsplit.Document
		var gotFrags []wetsplit.Fragment
		w := &mock.FragmentWriter{
			SaveFn: func(_ context.Context, doc *wetsplit.Document, frags []wetsplit.Fragment) error {
				calledWith = doc
				gotFrags = frags
				return nil
			},
		}

		doc := &wetsplit.Document{Path: "stcrt-2023-1.xml", Extractor: "op-xml-stcrt"}
		frags := []wetsplit.Fragment{{Text: "Artikel 1"}}

		err := w.Save(context.Background(), doc, frags)

		require.NoError(t, err)
		assert.Equal(t, doc, calledWith)
		assert.Equal(t, frags, gotFrags)
	})

	t.Run("returns error from SaveFn", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("save failed")
		w := &mock.FragmentWriter{
			SaveFn: func(_ context.Context, _ *wetsplit.Document, _ []wetsplit.Fragment) error {
				return expectedErr
			},
		}

		err := w.Save(context.Background(), &wetsplit.Document{}, nil)

		assert.ErrorIs(t, err, expectedErr)
	})
}
