package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
	config "github.com/slavikovics/EducationalSystem-sub000/configs"
	"github.com/slavikovics/EducationalSystem-sub000/database"
	"github.com/slavikovics/EducationalSystem-sub000/models"
	"github.com/slavikovics/EducationalSystem-sub000/notifications"
	"github.com/slavikovics/EducationalSystem-sub000/utils"
)

var certificateTemplate = template.Must(template.New("certificate").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>
body { font-family: Georgia, serif; text-align: center; padding: 80px; }
h1 { font-size: 42px; letter-spacing: 4px; }
.name { font-size: 32px; margin: 30px 0; }
.detail { font-size: 18px; color: #444; }
.serial { margin-top: 60px; font-size: 12px; color: #888; }
</style></head>
<body>
<h1>CERTIFICATE</h1>
<p class="detail">This certifies that</p>
<p class="name">{{.UserName}}</p>
<p class="detail">passed the test for the material<br><b>{{.MaterialTitle}}</b></p>
<p class="detail">with a score of {{.Score}} out of {{.TotalQuestions}}</p>
<p class="detail">{{.IssuedOn}}</p>
<p class="serial">Serial: {{.Serial}}</p>
</body>
</html>`))

// IssueCertificate turns a passing test result into a hosted PDF
// certificate. It runs in the background after the submission response is
// sent, so every failure is logged rather than surfaced to the student.
// At most one certificate is issued per user and test, retakes included.
func IssueCertificate(result *models.TestResult) {
	var existing models.Certificate
	if err := database.DB.Where("user_id = ? AND test_id = ?", result.UserID, result.TestID).First(&existing).Error; err == nil {
		return
	}

	var user models.User
	if err := database.DB.First(&user, "id = ?", result.UserID).Error; err != nil {
		log.Printf("🔥 Certificate skipped, user %d not found: %v", result.UserID, err)
		return
	}

	var test models.Test
	if err := database.DB.Preload("Material").First(&test, "id = ?", result.TestID).Error; err != nil {
		log.Printf("🔥 Certificate skipped, test %d not found: %v", result.TestID, err)
		return
	}
	materialTitle := "Deleted material"
	if test.Material != nil {
		materialTitle = test.Material.Title
	}

	serial, err := utils.GenerateUniqueSerial(database.DB)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate serial: %v", err)
		return
	}

	htmlData, err := renderCertificateHTML(user.FullName, materialTitle, serial, result)
	if err != nil {
		log.Printf("🔥 Failed to render certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate PDF: %v", err)
		return
	}

	uploadURL, err := uploadCertificatePDF(pdfBytes, result.UserID)
	if err != nil {
		log.Printf("🔥 Failed to upload certificate: %v", err)
		return
	}

	certificate := models.Certificate{
		UserID:         result.UserID,
		TestID:         result.TestID,
		MaterialTitle:  materialTitle,
		Serial:         serial,
		Score:          result.Score,
		CertificateURL: uploadURL,
		IssuedAt:       time.Now().UTC(),
	}
	if err := database.DB.Create(&certificate).Error; err != nil {
		log.Printf("🔥 Failed to store certificate for user %d: %v", result.UserID, err)
		return
	}

	log.Printf("✅ Issued certificate %s to user %d for test %d.", serial, result.UserID, result.TestID)

	go notifications.SendEmail(
		user.FullName,
		user.Email,
		"You passed! Here is your certificate",
		fmt.Sprintf("<h1>Congratulations!</h1><p>You passed the test for <b>%s</b>.</p><p><a href='%s'>Download your certificate</a></p>", materialTitle, uploadURL),
	)
}

func renderCertificateHTML(userName, materialTitle, serial string, result *models.TestResult) (string, error) {
	data := struct {
		UserName       string
		MaterialTitle  string
		Score          int
		TotalQuestions int
		IssuedOn       string
		Serial         string
	}{
		UserName:       userName,
		MaterialTitle:  materialTitle,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		IssuedOn:       time.Now().Format("January 2, 2006"),
		Serial:         serial,
	}

	var renderedHTML bytes.Buffer
	if err := certificateTemplate.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificatePDF(fileBytes []byte, userID uint) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%d_%s", userID, uuid.New().String()),
		Folder:       "test_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
