package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"
	"go.uber.org/zap"
)

// embeddingVectorSize matches text-embedding-004.
const embeddingVectorSize = 768

type QdrantService interface {
	VectorIndex
	InitCollection(ctx context.Context) error
	Close() error
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
	log            *zap.Logger
}

func NewQdrantService(urlStr, apiKey, collectionName string, log *zap.Logger) (QdrantService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     embeddingVectorSize,
		log:            log.Named("qdrant"),
	}, nil
}

// InitCollection implements QdrantService.
func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		q.log.Info("✅ Collection already exists", zap.String("collection", q.collectionName))
		return nil
	}

	err = q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     q.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	q.log.Info("✅ Qdrant collection created", zap.String("collection", q.collectionName))
	return nil
}

// NearestScore stores reference as the only point of a fresh session, runs a
// top-1 query with the resume vector and removes the session again.
func (q *qdrantService) NearestScore(ctx context.Context, reference, query []float32) (float64, error) {
	sessionID := uuid.New()

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Wait:           qdrant.PtrOf(true),
		Points:         []*qdrant.PointStruct{sessionPoint(sessionID, reference)},
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upsert point: %w", err)
	}
	defer func() {
		cleanupCtx, cancel := cleanupContext(ctx)
		defer cancel()
		q.deleteSession(cleanupCtx, sessionID.String())
	}()

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(query...),
		Filter: &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("session_id", sessionID.String()),
			},
		},
		Limit: qdrant.PtrOf(uint64(1)),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to search: %w", err)
	}

	if len(points) == 0 {
		return 0, errors.New("no neighbour returned")
	}

	return float64(points[0].Score), nil
}

// sessionPointTimeout bounds the delete of a session point once scoring is done.
const sessionPointTimeout = 5 * time.Second

// sessionPoint keys the point by the full session uuid.
func sessionPoint(sessionID uuid.UUID, vector []float32) *qdrant.PointStruct {
	return &qdrant.PointStruct{
		Id:      qdrant.NewID(sessionID.String()),
		Vectors: qdrant.NewVectors(vector...),
		Payload: qdrant.NewValueMap(map[string]any{
			"session_id": sessionID.String(),
			"doc_type":   "job_description",
		}),
	}
}

// cleanupContext outlives the request's cancellation or deadline so a timed
// out query still removes its session point.
func cleanupContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), sessionPointTimeout)
}

func (q *qdrantService) deleteSession(ctx context.Context, sessionID string) {
	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: &qdrant.Filter{
					Must: []*qdrant.Condition{
						qdrant.NewMatch("session_id", sessionID),
					},
				},
			},
		},
	})
	if err != nil {
		q.log.Warn("⚠️  Failed to delete session point", zap.String("session_id", sessionID), zap.Error(err))
	}
}

func (q *qdrantService) Close() error {
	return q.client.Close()
}
