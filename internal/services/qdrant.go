package services

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"alfredoptarigan/smart-talent/internal/config"
	"alfredoptarigan/smart-talent/internal/models"
)

// QuestionEntry is one question as stored in the question bank.
type QuestionEntry struct {
	Question    string
	IdealAnswer string
	Kind        models.QuestionKind
	Context     string
	Source      string
}

type QdrantService interface {
	InitCollection(ctx context.Context) error
	UpsertQuestion(ctx context.Context, entry QuestionEntry, embedding []float32) error
	SearchQuestions(ctx context.Context, queryEmbedding []float32, kind models.QuestionKind, limit int) ([]models.QuestionSearchResult, error)
	DeleteSource(ctx context.Context, source string) error
}

type qdrantService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewQdrantService(cfg config.QdrantConfig) (QdrantService, error) {
	parsed, err := url.Parse(cfg.URL)
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
		APIKey: cfg.APIKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &qdrantService{
		client:         client,
		collectionName: cfg.Collection,
		vectorSize:     768, // text-embedding-004
	}, nil
}

func (q *qdrantService) InitCollection(ctx context.Context) error {
	exists, err := q.client.CollectionExists(ctx, q.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		log.Printf("✅ Question bank '%s' already exists\n", q.collectionName)
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

	log.Printf("✅ Question bank '%s' created\n", q.collectionName)
	return nil
}

// QuestionPointID is stable for a kind and question text, so a question
// generated twice overwrites its earlier point.
func QuestionPointID(kind models.QuestionKind, question string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(string(kind)+"\x00"+question)).String()
}

func (q *qdrantService) UpsertQuestion(ctx context.Context, entry QuestionEntry, embedding []float32) error {
	point := &qdrant.PointStruct{
		Id:      qdrant.NewID(QuestionPointID(entry.Kind, entry.Question)),
		Vectors: qdrant.NewVectors(embedding...),
		Payload: qdrant.NewValueMap(map[string]any{
			"question":     entry.Question,
			"ideal_answer": entry.IdealAnswer,
			"kind":         string(entry.Kind),
			"context":      entry.Context,
			"source":       entry.Source,
		}),
	}

	_, err := q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collectionName,
		Points:         []*qdrant.PointStruct{point},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert point: %w", err)
	}

	return nil
}

func (q *qdrantService) SearchQuestions(ctx context.Context, queryEmbedding []float32, kind models.QuestionKind, limit int) ([]models.QuestionSearchResult, error) {
	var filter *qdrant.Filter
	if kind != "" {
		filter = &qdrant.Filter{
			Must: []*qdrant.Condition{
				qdrant.NewMatch("kind", string(kind)),
			},
		}
	}

	points, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collectionName,
		Query:          qdrant.NewQuery(queryEmbedding...),
		Filter:         filter,
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search: %w", err)
	}

	results := make([]models.QuestionSearchResult, 0, len(points))
	for _, point := range points {
		results = append(results, models.QuestionSearchResult{
			Question:    payloadString(point.Payload, "question"),
			IdealAnswer: payloadString(point.Payload, "ideal_answer"),
			Kind:        models.QuestionKind(payloadString(point.Payload, "kind")),
			Score:       point.Score,
		})
	}

	return results, nil
}

// DeleteSource removes every point loaded from one source document.
func (q *qdrantService) DeleteSource(ctx context.Context, source string) error {
	filter := &qdrant.Filter{
		Must: []*qdrant.Condition{
			qdrant.NewMatch("source", source),
		},
	}

	_, err := q.client.Delete(ctx, &qdrant.DeletePoints{
		CollectionName: q.collectionName,
		Points: &qdrant.PointsSelector{
			PointsSelectorOneOf: &qdrant.PointsSelector_Filter{
				Filter: filter,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to delete source %s: %w", source, err)
	}

	return nil
}

func payloadString(payload map[string]*qdrant.Value, key string) string {
	value, ok := payload[key]
	if !ok {
		return ""
	}
	if val, ok := value.GetKind().(*qdrant.Value_StringValue); ok {
		return val.StringValue
	}
	return ""
}
