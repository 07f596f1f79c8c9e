package gemini

// MeetingTaskPrompt is the fixed instruction sent together with the uploaded
// recording. It asks for a JSON array of tasks with Korean field names and
// tells the model to substitute "미정" for a missing assignee or due date and
// never to drop an item.
const MeetingTaskPrompt = `회의 내용을 듣고 JSON으로 업무를 정리해줘.
형식은 반드시 지켜야 해:
[{"담당자": "이름", "업무내용": "할일", "기한": "날짜"}]

주의사항:
1. 담당자가 없으면 '미정', 기한이 언급 안 됐으면 '미정'이라고 꼭 적어.
2. 항목을 아예 빼먹지 마. (빈 값이라도 채워)`
