package domain

// RejectionReasons is the fixed catalogue of reject reason codes with their
// seller-visible labels. The label is what a seller sees; internal moderation
// comments are stored separately and never exposed.
var RejectionReasons = map[string]string{
	"WRONG_INN":          "ИНН указан неверно",
	"WRONG_SUPPLIER":     "Выбран неверный поставщик",
	"NEED_MORE_INFO":     "Недостаточно данных, уточните информацию",
	"SUPPLIER_NOT_FOUND": "Поставщик отсутствует в справочнике",
	"DUPLICATE_REQUEST":  "Дубликат заявки",
}

func ReasonLabel(code string) (string, bool) {
	label, ok := RejectionReasons[code]
	return label, ok
}
