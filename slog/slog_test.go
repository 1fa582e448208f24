package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/talmud"
	"github.com/fwojciec/talmud/mock"
	talslog "github.com/fwojciec/talmud/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTopicService_FindTopicByID(t *testing.T) {
	t.Parallel()

	t.Run("logs lookup with topic and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TopicService{
			FindTopicByIDFn: func(_ context.Context, id string) (*talmud.Topic, error) {
				return &talmud.Topic{ID: id, Query: "What is X?"}, nil
			},
		}

		svc := talslog.NewLoggingTopicService(inner, logger)
		topic, err := svc.FindTopicByID(context.Background(), "42")

		require.NoError(t, err)
		assert.Equal(t, "What is X?", topic.Query)
		output := buf.String()
		assert.Contains(t, output, "topic lookup")
		assert.Contains(t, output, "topic=42")
		assert.Contains(t, output, "found=true")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TopicService{
			FindTopicByIDFn: func(_ context.Context, id string) (*talmud.Topic, error) {
				return nil, talmud.Errorf(talmud.ENOTFOUND, "did not find topic %q", id)
			},
		}

		svc := talslog.NewLoggingTopicService(inner, logger)
		_, err := svc.FindTopicByID(context.Background(), "7")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "found=false")
		assert.Contains(t, output, "err=")
		assert.Contains(t, output, "did not find topic")
	})
}

func TestLoggingTopicService_FindTopics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.TopicService{
		FindTopicsFn: func(_ context.Context) ([]*talmud.Topic, error) {
			return []*talmud.Topic{{ID: "1"}, {ID: "2"}, {ID: "3"}}, nil
		},
	}

	svc := talslog.NewLoggingTopicService(inner, logger)
	topics, err := svc.FindTopics(context.Background())

	require.NoError(t, err)
	assert.Len(t, topics, 3)
	output := buf.String()
	assert.Contains(t, output, "topic listing")
	assert.Contains(t, output, "count=3")
}

func TestLoggingResponseService_FindResponseByTopicID(t *testing.T) {
	t.Parallel()

	t.Run("logs answer and reference counts", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ResponseService{
			FindResponseByTopicIDFn: func(_ context.Context, topicID string) (*talmud.Response, error) {
				return &talmud.Response{
					TopicID:    topicID,
					References: []string{"a", "b"},
					Answer:     []talmud.Answer{{Text: "x"}},
				}, nil
			},
		}

		svc := talslog.NewLoggingResponseService(inner, logger)
		_, err := svc.FindResponseByTopicID(context.Background(), "42")

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "response lookup")
		assert.Contains(t, output, "topic=42")
		assert.Contains(t, output, "answers=1")
		assert.Contains(t, output, "references=2")
	})

	t.Run("logs zero counts on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ResponseService{
			FindResponseByTopicIDFn: func(_ context.Context, _ string) (*talmud.Response, error) {
				return nil, errors.New("read failed")
			},
		}

		svc := talslog.NewLoggingResponseService(inner, logger)
		_, err := svc.FindResponseByTopicID(context.Background(), "42")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "answers=0")
		assert.Contains(t, output, "err=\"read failed\"")
	})
}

func TestLoggingDataWriter_WriteData(t *testing.T) {
	t.Parallel()

	t.Run("logs response size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var written *talmud.Data
		inner := &mock.DataWriter{
			WriteDataFn: func(_ context.Context, data *talmud.Data) error {
				written = data
				return nil
			},
		}

		w := talslog.NewLoggingDataWriter(inner, logger)
		data := talmud.NewData("q", "12345")
		err := w.WriteData(context.Background(), data)

		require.NoError(t, err)
		assert.Same(t, data, written)
		output := buf.String()
		assert.Contains(t, output, "data write")
		assert.Contains(t, output, "response_bytes=5")
	})

	t.Run("logs zero size for nil data", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.DataWriter{
			WriteDataFn: func(_ context.Context, data *talmud.Data) error {
				return errors.New("nothing to write")
			},
		}

		w := talslog.NewLoggingDataWriter(inner, logger)
		var err error
		assert.NotPanics(t, func() {
			err = w.WriteData(context.Background(), nil)
		})

		require.EqualError(t, err, "nothing to write")
		output := buf.String()
		assert.Contains(t, output, "response_bytes=0")
		assert.Contains(t, output, "err=\"nothing to write\"")
	})
}
