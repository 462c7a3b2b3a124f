package models

const (
	PlatformTypeText  = "text"
	PlatformTypeImage = "image"

	// FilterAll disables a list filter when passed as its value.
	FilterAll = "all"
)

var Platforms = []string{
	"ChatGPT", "Gemini", "Copilot", "Midjourney", "DALL-E", "Stable Diffusion", "CLOVA X", "Claude",
}

var ImageCategories = []string{
	"3D", "일러스트", "사물", "동물", "인물", "캐릭터", "게임", "디자인", "예술",
	"공예", "패션", "건축", "음식", "사진", "배경", "로고", "기타",
}

var TextCategories = []string{
	"글쓰기", "개발", "교육", "마케팅", "연구", "업무", "콘텐츠",
	"생산성", "여행", "SNS", "고민해결", "생활", "재미", "기타",
}
