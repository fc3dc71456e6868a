package api

// DiagnoseRequest is the body of POST /diagnose.
type DiagnoseRequest struct {
	Symptoms  map[string]bool `json:"symptoms"`
	PatientID int             `json:"patient_id"`
	DoctorID  int             `json:"doctor_id"`
}

type DiagnosisResult struct {
	Disease          string   `json:"disease"`
	Confidence       float64  `json:"confidence"`
	SymptomsDetected []string `json:"symptoms_detected"`
}

// InteractionRequest is the body of POST /check_interaction.
type InteractionRequest struct {
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

type InteractionResult struct {
	MedicationsChecked []string          `json:"medications_checked"`
	DrugInteractions   []DrugInteraction `json:"drug_interactions"`
	AllergyWarnings    []AllergyWarning  `json:"allergy_warnings"`
}

type DrugInteraction struct {
	Medication1 string `json:"medication1"`
	Medication2 string `json:"medication2"`
	Severity    string `json:"severity"`
	Warning     string `json:"warning"`
}

type AllergyWarning struct {
	Allergy    string `json:"allergy"`
	Medication string `json:"medication"`
	Warning    string `json:"warning"`
	Severity   string `json:"severity,omitempty"`
}

// UploadRequest describes one prescription image upload.
type UploadRequest struct {
	Path      string
	PatientID int
	DoctorID  int
}

type PrescriptionResult struct {
	ExtractedText string `json:"extracted_text"`
}

// errorBody is the backend's error envelope: {"error": "..."}.
type errorBody struct {
	Error string `json:"error"`
}
