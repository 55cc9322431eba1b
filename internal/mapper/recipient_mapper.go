// FILE: internal/mapper/recipient_mapper.go
// Mapper projecting User models into broadcast Recipients
package mapper

import (
	"roomlink-be/internal/entity"
	"roomlink-be/internal/model"
)

type RecipientMapper struct{}

func NewRecipientMapper() *RecipientMapper {
	return &RecipientMapper{}
}

func (m *RecipientMapper) ToRecipient(model *model.User) *entity.Recipient {
	if model == nil {
		return nil
	}
	return &entity.Recipient{
		Id:                 model.Id,
		Email:              model.Email,
		Phone:              model.Phone,
		PushToken:          model.PushToken,
		AccountType:        entity.AccountType(model.AccountType),
		VerificationStatus: model.VerificationStatus,
	}
}

func (m *RecipientMapper) ToRecipients(models []*model.User) []entity.Recipient {
	recipients := make([]entity.Recipient, 0, len(models))
	for _, mdl := range models {
		recipients = append(recipients, *m.ToRecipient(mdl))
	}
	return recipients
}
