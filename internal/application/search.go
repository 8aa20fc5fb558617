package application

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/kmulatu/ezana-academy/internal/domain/entity"
)

// CourseSearch indexes the catalog into Elasticsearch and answers free-text
// queries against it. When the cluster is unreachable the query degrades to
// an in-memory substring match over the current catalog, so search never
// errors out at the HTTP layer.
type CourseSearch struct {
	es     *elasticsearch.Client
	index  string
	data   *DataService
	logger *logrus.Logger
}

func NewCourseSearch(es *elasticsearch.Client, index string, data *DataService, logger *logrus.Logger) *CourseSearch {
	return &CourseSearch{es: es, index: index, data: data, logger: logger}
}

// IndexCourse writes one catalog entry into the search index.
func (s *CourseSearch) IndexCourse(ctx context.Context, course entity.Course) error {
	if s.es == nil || s.index == "" {
		return nil
	}
	b, err := json.Marshal(course)
	if err != nil {
		return err
	}
	res, err := s.es.Index(s.index, bytes.NewReader(b),
		s.es.Index.WithDocumentID(course.ID),
		s.es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.logger.WithField("status", res.Status()).WithField("course_id", course.ID).Warn("es index response error")
	}
	return nil
}

// RemoveCourse deletes a catalog entry from the search index.
func (s *CourseSearch) RemoveCourse(ctx context.Context, id string) {
	if s.es == nil || s.index == "" {
		return
	}
	res, err := s.es.Delete(s.index, id, s.es.Delete.WithContext(ctx))
	if err != nil {
		s.logger.WithError(err).WithField("course_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}

// Search answers a free-text query over the catalog. The bool reports
// whether the in-memory fallback was used.
func (s *CourseSearch) Search(ctx context.Context, q string, size int) ([]entity.Course, bool) {
	if size <= 0 || size > 50 {
		size = 10
	}
	if s.es == nil || s.index == "" {
		return s.fallback(ctx, q, size), true
	}

	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description", "instructorName", "category"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.es.Search(
		s.es.Search.WithContext(c),
		s.es.Search.WithIndex(s.index),
		s.es.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		s.logger.WithError(err).Warn("es search failed, using catalog scan")
		return s.fallback(ctx, q, size), true
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.logger.WithField("status", res.Status()).Warn("es search response error, using catalog scan")
		return s.fallback(ctx, q, size), true
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source entity.Course `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		s.logger.WithError(err).Warn("es search decode failed, using catalog scan")
		return s.fallback(ctx, q, size), true
	}

	out := make([]entity.Course, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, false
}

func (s *CourseSearch) fallback(ctx context.Context, q string, size int) []entity.Course {
	courses, _ := s.data.GetCourses(ctx)
	needle := strings.ToLower(q)
	out := make([]entity.Course, 0, size)
	for _, c := range courses {
		if len(out) >= size {
			break
		}
		if strings.Contains(strings.ToLower(c.Title), needle) ||
			strings.Contains(strings.ToLower(c.Description), needle) ||
			strings.Contains(strings.ToLower(c.Category), needle) {
			out = append(out, c)
		}
	}
	return out
}
