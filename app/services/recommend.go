package services

import "wacblog/app/models"

// Recommendation weights. The publish timestamp is in milliseconds, so its
// term is around 10^12 and outweighs likes and views by many orders of
// magnitude: in practice the ranking is newest first.
const (
	likesWeight   = 0.3
	viewsWeight   = 0.2
	recencyWeight = 0.5
)

// RecommendationScore is the daily recommendation score of a post. A
// publish date that does not parse contributes nothing.
func RecommendationScore(p *models.Post) float64 {
	var millis int64
	if ts, err := p.PublishedAt(); err == nil {
		millis = ts.UnixMilli()
	}
	return likesWeight*float64(p.Likes) + viewsWeight*float64(p.Views) + recencyWeight*float64(millis)
}

// DailyRecommendations returns the three highest scoring posts.
func (s *Store) DailyRecommendations() ([]*models.Post, error) {
	return s.rankPosts(RecommendationScore, RecommendationLimit)
}
