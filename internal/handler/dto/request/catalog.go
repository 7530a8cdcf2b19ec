package request

import "click-collect/internal/usecase/commands"

type RateRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" binding:"max=1000"`
}

func (r *RateRequest) ToInput() commands.RateInput {
	return commands.RateInput{Rating: r.Rating, Comment: r.Comment}
}
