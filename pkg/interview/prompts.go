package interview

import (
	"fmt"
	"strings"
)

const (
	promptName       = "Hello, what's your name? "
	promptOwnsTrucks = "Do you own trucks? "
	promptTotalCount = "How many trucks do you have? "
	promptBrandsMany = "What brands are they? "
	promptBrandsOne  = "What brand is your truck? "

	msgBlankName        = "You can tell me your name, we only use it to address you."
	msgBlankCompany     = "Please tell me the name of your company."
	msgNotUnderstood    = "I am not sure I understood you. Let's try again."
	msgNotANumber       = "That does not look like a number to me. Let's try again."
	msgNegativeTrucks   = "Nice try, but I will not fall for negative trucks!"
	msgNoTrucks         = "Ok, that was easy :) Bye!"
	msgTooManyBrands    = "You seem to have more brands than trucks! Let's try again!"
	msgNoBrand          = "I did not recognize any brand name. Let's try again."
	msgStartTrucks      = "I will now ask you about your trucks. If you want to start over from here, tell me to 'start over'"
	msgUnknownTarget    = "I did not recognize the brand you want to correct."
	msgBlankModel       = "The model name can't be blank!"
	msgEngineRange      = "Engine size seems to be too high or low, please check!"
	msgAxleRange        = "Number of axles seems to be too high or low, please check!"
	msgWeightRange      = "Weight seems to be too high or low, please check!"
	msgMaxLoadRange     = "Max load seems to be too high or low, please check!"
	msgGroupTooLarge    = "That's too many, the numbers don't add up. Let's try again."
	msgGroupNotPositive = "I expected a positive number of trucks. Let's try again."
	msgCountsOff        = "The numbers don't add up. Let's try again."
	msgDone             = "Looks like I have all the info I need. Bye!"
)

func promptCompany(name string) string {
	return fmt.Sprintf("Hi %s, what's the name of your company? ", name)
}

func msgBrandsUnderstood(brands []string) string {
	return "I understand you have the following brands: " + strings.Join(brands, ", ")
}

func msgStartBrand(brand string) string {
	return fmt.Sprintf("I will now ask you about your %s trucks. If you want to correct your input for your %s trucks, tell me 'correct %s'", brand, brand, brand)
}

func msgAllOneBrand(n int, brand string) string {
	return fmt.Sprintf("It seems that all your %d trucks are %s trucks.", n, brand)
}

func msgBrandCountOff(brand string) string {
	return fmt.Sprintf("The numbers don't seem to add up. Let me ask you again about the %s trucks you have.", brand)
}

func promptBrandCount(brand string) string {
	return fmt.Sprintf("How many %s trucks do you have? ", brand)
}

func promptSameModel(brand string) string {
	return fmt.Sprintf("Are your %s trucks of the same model? ", brand)
}

func promptSingleModel(brand string) string {
	return fmt.Sprintf("What is the model of your %s trucks? ", brand)
}

func promptNthModel(k int, brand string) string {
	return fmt.Sprintf("What is model #%d among your %s trucks (Answer none if you have no more models)? ", k, brand)
}

func msgDuplicateModel(brand, model string) string {
	return fmt.Sprintf("It looks like you already told me about your %s %s model trucks! Let's try again.", brand, model)
}

func msgMissingInfo(brand string) string {
	return fmt.Sprintf("We are missing information for brand %s!", brand)
}

func msgChangedMind(brand string) string {
	return fmt.Sprintf("Before you told me you have more than one %s model. No problem, it's ok to change your mind.", brand)
}

func promptEngineSize(model string) string {
	return fmt.Sprintf("What is the engine size for the %s model [default unit: litres]? ", model)
}

func promptAxleCount(model string) string {
	return fmt.Sprintf("How many axles does the %s model have? ", model)
}

func promptWeight(model string) string {
	return fmt.Sprintf("How much does the %s weigh (in tons)? ", model)
}

func promptMaxLoad(model string) string {
	return fmt.Sprintf("What is the max load for the %s model (in tons)? ", model)
}

func promptGroupSize(brand, model string) string {
	return fmt.Sprintf("How many %s %s trucks do you have? ", brand, model)
}
