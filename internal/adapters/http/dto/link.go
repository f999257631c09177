package dto

import "github.com/cheneysan/link-shortener/internal/domain"

type LinkResponse struct {
	ID        string `json:"id" example:"MTIzNDU2Nzg5"`
	TargetURL string `json:"targetUrl" example:"https://example.com"`
}

func FromDomain(link domain.Link) LinkResponse {
	return LinkResponse{
		ID:        link.ID,
		TargetURL: link.TargetURL,
	}
}

type CountedStatisticResponse struct {
	Amount    int64   `json:"amount" example:"3"`
	Referer   *string `json:"referer" example:"https://news.example"`
	UserAgent *string `json:"userAgent" example:"Mozilla/5.0"`
}

func FromStatistic(stat domain.CountedStatistic) CountedStatisticResponse {
	return CountedStatisticResponse{
		Amount:    stat.Amount,
		Referer:   stat.Referer,
		UserAgent: stat.UserAgent,
	}
}
