package entity

// HandbookSection is a static knowledge-base card from the "Sổ tay" tab.
type HandbookSection struct {
	Title string   `json:"title"`
	Tips  []string `json:"tips"`
	CTA   string   `json:"cta"`
}

// SeverityGuide pairs a severity band with its recommended actions.
type SeverityGuide struct {
	Severity Severity `json:"severity"`
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	Actions  []string `json:"actions"`
}

// HandbookSections is the community handbook content, kept in the product's
// language.
var HandbookSections = []HandbookSection{
	{
		Title: "Phân loại rác tại nguồn",
		Tips: []string{
			"Hữu cơ: thức ăn thừa, lá cây – ủ làm phân compost.",
			"Tái chế: giấy, nhựa PET/HDPE, kim loại – rửa sạch, làm khô.",
			"Rác nguy hại: pin, bóng đèn, dầu – để riêng, giao điểm thu gom.",
		},
		CTA: "Tải nhãn dán phân loại (PDF)",
	},
	{
		Title: "Dấu hiệu ô nhiễm cần báo cáo",
		Tips: []string{
			"Nước đổi màu, bọt trắng bất thường, mùi hôi nặng.",
			"Cá chết, vật nuôi bỏ ăn gần bờ kênh.",
			"Sau mưa lớn: rác trôi dạt nhiều, kiểm tra các miệng cống.",
		},
		CTA: "Gửi báo cáo kèm ảnh",
	},
	{
		Title: "Hướng dẫn xử lý nhanh",
		Tips: []string{
			"Trang bị găng tay, kẹp rác, giày kín mũi.",
			"Thu gom theo nhóm 3–5 người, bọc kín rác nguy hại.",
			"Cân, ghi chép số bao rác theo vị trí để theo dõi xu hướng.",
		},
		CTA: "Xem checklist an toàn",
	},
}

// SeverityGuides lists the recommended actions per severity band, in
// ascending severity order.
var SeverityGuides = []SeverityGuide{
	{
		Severity: SeverityGood,
		Label:    SeverityGood.Label(),
		Color:    SeverityGood.Color(),
		Actions: []string{
			"Duy trì dọn rác định kỳ",
			"Truyền thông nhắc phân loại",
		},
	},
	{
		Severity: SeverityCaution,
		Label:    SeverityCaution.Label(),
		Color:    SeverityCaution.Color(),
		Actions: []string{
			"Tăng tần suất kiểm tra",
			"Bố trí thùng rác bổ sung",
		},
	},
	{
		Severity: SeverityBad,
		Label:    SeverityBad.Label(),
		Color:    SeverityBad.Color(),
		Actions: []string{
			"Huy động nhóm phản ứng nhanh",
			"Lắp lưới chắn rác tạm thời",
		},
	},
	{
		Severity: SeverityHazard,
		Label:    SeverityHazard.Label(),
		Color:    SeverityHazard.Color(),
		Actions: []string{
			"Cảnh báo cộng đồng",
			"Báo chính quyền & tạm ngừng hoạt động gần bờ",
		},
	},
}
